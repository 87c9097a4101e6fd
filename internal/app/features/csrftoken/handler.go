// internal/app/features/csrftoken/handler.go
package csrftoken

import (
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/system/csrfguard"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type tokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// HandleToken handles GET /csrf-token. The route must sit inside the
// csrfguard middleware or the request carries no token to return.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	token := csrfguard.Token(r)
	if token == "" {
		h.Log.Error("csrf-token requested outside the csrf middleware")
		httpjson.Message(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}
	httpjson.Write(w, http.StatusOK, tokenResponse{CSRFToken: token})
}
