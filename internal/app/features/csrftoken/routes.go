// internal/app/features/csrftoken/routes.go
package csrftoken

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleToken)
	return r
}
