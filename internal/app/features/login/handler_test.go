package login_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/eventnethq/eventnet/internal/app/features/login"
	"github.com/eventnethq/eventnet/internal/app/flow"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/eventnethq/eventnet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubAuth struct {
	user   models.PublicUser
	err    error
	called bool
}

func (s *stubAuth) Login(_ context.Context, email, password string) (models.PublicUser, error) {
	s.called = true
	return s.user, s.err
}

func TestHandleLogin_OK(t *testing.T) {
	stub := &stubAuth{user: models.PublicUser{
		ID:       primitive.NewObjectID(),
		Name:     "Test Attendee",
		Email:    "new@example.com",
		Verified: true,
	}}
	h := login.NewHandler(stub, nil, zap.NewNop())

	req := testutil.NewJSONRequest(http.MethodPost, "/login",
		`{"email":"new@example.com","password":"hunter2secret"}`)
	rec := testutil.NewRecorder()
	h.HandleLogin(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Login successful")
	rec.AssertContains(t, `"isVerified":true`)
}

func TestHandleLogin_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"nope","password":"hunter2secret"}`},
		{"empty password", `{"email":"a@x.com","password":""}`},
		{"malformed json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuth{}
			h := login.NewHandler(stub, nil, zap.NewNop())

			req := testutil.NewJSONRequest(http.MethodPost, "/login", tc.body)
			rec := testutil.NewRecorder()
			h.HandleLogin(rec.ResponseRecorder, req)

			rec.AssertStatus(t, http.StatusBadRequest)
			if stub.called {
				t.Error("flow must not run on invalid input")
			}
		})
	}
}

func TestHandleLogin_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad credentials", flow.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not verified", flow.ErrNotVerified, http.StatusForbidden},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuth{err: tc.err}
			h := login.NewHandler(stub, nil, zap.NewNop())

			req := testutil.NewJSONRequest(http.MethodPost, "/login",
				`{"email":"a@x.com","password":"hunter2secret"}`)
			rec := testutil.NewRecorder()
			h.HandleLogin(rec.ResponseRecorder, req)

			rec.AssertStatus(t, tc.wantStatus)
		})
	}
}
