// internal/app/features/events/handler.go
package events

import (
	"context"
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"github.com/eventnethq/eventnet/internal/app/system/inputval"
	"github.com/eventnethq/eventnet/internal/app/system/timeouts"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// EventLister reads the events collection.
type EventLister interface {
	List(ctx context.Context) ([]models.Event, error)
}

// AttendeeLister reads verified users for an event.
type AttendeeLister interface {
	ListVerifiedByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.User, error)
}

type Handler struct {
	Events EventLister
	Users  AttendeeLister
	ErrLog *httpjson.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(events EventLister, users AttendeeLister, logger *zap.Logger) *Handler {
	return &Handler{
		Events: events,
		Users:  users,
		ErrLog: httpjson.NewErrorLogger(logger),
		Log:    logger,
	}
}

// HandleList handles GET /events.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "events: list", err, "Something went wrong. Please try again later.")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	httpjson.Write(w, http.StatusOK, events)
}

// HandleListUsers handles GET /events/{eventID}/users. Only verified
// attendees are visible; the password hash never leaves the store.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "eventID")
	if !inputval.IsValidObjectID(rawID) {
		httpjson.Message(w, http.StatusBadRequest, "Invalid event id.")
		return
	}
	eventID, _ := primitive.ObjectIDFromHex(rawID)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users, err := h.Users.ListVerifiedByEvent(ctx, eventID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "events: list users", err, "Something went wrong. Please try again later.")
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	httpjson.Write(w, http.StatusOK, public)
}
