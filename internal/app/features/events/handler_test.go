package events_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/eventnethq/eventnet/internal/app/features/events"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/eventnethq/eventnet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubEvents struct {
	events []models.Event
	err    error
}

func (s *stubEvents) List(_ context.Context) ([]models.Event, error) {
	return s.events, s.err
}

type stubAttendees struct {
	users []models.User
	err   error
}

func (s *stubAttendees) ListVerifiedByEvent(_ context.Context, _ primitive.ObjectID) ([]models.User, error) {
	return s.users, s.err
}

func TestHandleList(t *testing.T) {
	h := events.NewHandler(&stubEvents{events: []models.Event{{
		ID:        primitive.NewObjectID(),
		Name:      "GopherConf",
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().Add(48 * time.Hour),
	}}}, &stubAttendees{}, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/events")
	rec := testutil.NewRecorder()
	h.HandleList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "GopherConf")
	rec.AssertContains(t, "startDate")
}

func TestHandleList_EmptyIsArray(t *testing.T) {
	h := events.NewHandler(&stubEvents{}, &stubAttendees{}, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/events")
	rec := testutil.NewRecorder()
	h.HandleList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "[]")
}

func TestHandleList_Error(t *testing.T) {
	h := events.NewHandler(&stubEvents{err: errors.New("db down")}, &stubAttendees{}, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/events")
	rec := testutil.NewRecorder()
	h.HandleList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
}

func TestHandleListUsers(t *testing.T) {
	eventID := primitive.NewObjectID()
	h := events.NewHandler(&stubEvents{}, &stubAttendees{users: []models.User{{
		ID:           primitive.NewObjectID(),
		Name:         "Verified Attendee",
		Email:        "v@example.com",
		PasswordHash: "$2a$10$secretsecret",
		Verified:     true,
		EventID:      eventID,
	}}}, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/events/"+eventID.Hex()+"/users")
	req = testutil.WithChiURLParam(req, "eventID", eventID.Hex())
	rec := testutil.NewRecorder()
	h.HandleListUsers(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Verified Attendee")
	if body := rec.Body.String(); strings.Contains(body, "secretsecret") || strings.Contains(body, "password") {
		t.Errorf("response leaks password material: %s", body)
	}
}

func TestHandleListUsers_BadID(t *testing.T) {
	h := events.NewHandler(&stubEvents{}, &stubAttendees{}, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/events/nope/users")
	req = testutil.WithChiURLParam(req, "eventID", "nope")
	rec := testutil.NewRecorder()
	h.HandleListUsers(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}
