// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/flow"
	"github.com/eventnethq/eventnet/internal/app/system/auth"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"github.com/eventnethq/eventnet/internal/app/system/inputval"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/app/system/timeouts"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.uber.org/zap"
)

// Authenticator is the slice of the flow service this handler needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.PublicUser, error)
}

type Handler struct {
	Flow       Authenticator
	SessionMgr *auth.SessionManager
	ErrLog     *httpjson.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(svc Authenticator, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Flow:       svc,
		SessionMgr: sessionMgr,
		ErrLog:     httpjson.NewErrorLogger(logger),
		Log:        logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// HandleLogin handles POST /login. On success it establishes the
// session cookie the profile routes require.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: decode", err, "Invalid request body.")
		return
	}

	email := normalize.Email(req.Email)
	if !inputval.IsValidEmail(email) || req.Password == "" {
		httpjson.Message(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Flow.Login(ctx, email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrInvalidCredentials):
			httpjson.Message(w, http.StatusUnauthorized, "Invalid email or password.")
		case errors.Is(err, flow.ErrNotVerified):
			httpjson.Message(w, http.StatusForbidden, "Please verify your email before logging in.")
		default:
			h.ErrLog.LogServerError(w, r, "login", err, "Something went wrong. Please try again later.")
		}
		return
	}

	if h.SessionMgr != nil {
		sessionUser := models.User{ID: user.ID, Name: user.Name, Email: user.Email}
		if err := h.SessionMgr.SignIn(w, r, &sessionUser); err != nil {
			h.ErrLog.LogServerError(w, r, "login: sign in", err, "Something went wrong. Please try again later.")
			return
		}
	}

	httpjson.Write(w, http.StatusOK, loginResponse{
		Message: "Login successful.",
		User:    user,
	})
}
