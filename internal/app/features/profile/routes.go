// internal/app/features/profile/routes.go
package profile

import (
	"github.com/eventnethq/eventnet/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Put("/{userID}", h.HandleUpdate)
	return r
}
