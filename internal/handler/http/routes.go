package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)

			r.Get("/users", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Get("/amenities", h.listAmenities)
			r.Get("/amenities/{id}", h.getAmenity)
			r.Get("/places", h.listPlaces)
			r.Get("/places/{id}", h.getPlace)
			r.Get("/places/{id}/reviews", h.listPlaceReviews)
			r.Get("/reviews", h.listReviews)
			r.Get("/reviews/{id}", h.getReview)
		})

		// routes for authenticated users
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Put("/users/{id}", h.updateUser)
			r.Post("/places", h.createPlace)
			r.Put("/places/{id}", h.updatePlace)
			r.Delete("/places/{id}", h.deletePlace)
			r.Post("/reviews", h.createReview)
			r.Put("/reviews/{id}", h.updateReview)
			r.Delete("/reviews/{id}", h.deleteReview)

			// administrator only
			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)

				r.Post("/users", h.createUser)
				r.Delete("/users/{id}", h.deleteUser)
				r.Post("/amenities", h.createAmenity)
				r.Put("/amenities/{id}", h.updateAmenity)
				r.Delete("/amenities/{id}", h.deleteAmenity)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
