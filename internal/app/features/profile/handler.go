// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/app/system/auth"
	"github.com/eventnethq/eventnet/internal/app/system/htmlsanitize"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"github.com/eventnethq/eventnet/internal/app/system/inputval"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/app/system/timeouts"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ProfileStore is the slice of the user store this handler needs.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd userstore.ProfileUpdate) (*models.User, error)
}

type Handler struct {
	Users  ProfileStore
	ErrLog *httpjson.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users ProfileStore, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		ErrLog: httpjson.NewErrorLogger(logger),
		Log:    logger,
	}
}

type updateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Status   string `json:"status"`
	Bio      string `json:"bio"`
}

type updateResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// HandleUpdate handles PUT /profile/{userID}. The route runs behind
// RequireSignedIn; the handler additionally checks that the session
// identity matches the target id, so users can only edit themselves.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	rawID := chi.URLParam(r, "userID")
	if !inputval.IsValidObjectID(rawID) {
		httpjson.Message(w, http.StatusBadRequest, "Invalid user id.")
		return
	}
	if sessionUser.ID != rawID {
		httpjson.Message(w, http.StatusForbidden, "You can only edit your own profile.")
		return
	}
	userID, _ := primitive.ObjectIDFromHex(rawID)

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "profile: decode", err, "Invalid request body.")
		return
	}

	name := normalize.Name(req.Name)
	if name == "" {
		httpjson.Message(w, http.StatusBadRequest, "Name is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Users.UpdateProfile(ctx, userID, userstore.ProfileUpdate{
		Name:     name,
		Phone:    htmlsanitize.Plain(req.Phone),
		LinkedIn: htmlsanitize.Plain(req.LinkedIn),
		GitHub:   htmlsanitize.Plain(req.GitHub),
		Status:   htmlsanitize.Plain(req.Status),
		Bio:      htmlsanitize.Plain(req.Bio),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Message(w, http.StatusNotFound, "User not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "profile: update", err, "Something went wrong. Please try again later.")
		return
	}

	httpjson.Write(w, http.StatusOK, updateResponse{
		Message: "Profile updated.",
		User:    updated.Public(),
	})
}
