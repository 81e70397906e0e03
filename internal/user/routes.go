package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateMe)
	r.Get("/{id}", h.GetProfile)
	r.Get("/{id}/outcomes", h.PersonOutcomes)

	return r
}
