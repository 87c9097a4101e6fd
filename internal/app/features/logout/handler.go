// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/system/auth"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

// HandleLogout handles POST /logout. Clearing an absent session is not
// an error; the response is the same either way.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("logout: clear session", zap.Error(err))
	}
	httpjson.Message(w, http.StatusOK, "Logged out.")
}
