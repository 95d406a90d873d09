package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"auksion_bot/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/listings", func(r chi.Router) {
				r.Post("/", handler(s.postV1Listing))
				r.Get("/", handler(s.getV1Listings))
				r.Get("/{id}", handler(s.getV1Listing))
				r.Delete("/{id}", handler(s.deleteV1Listing))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
