// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/convene/internal/config"
	"github.com/tomtom215/convene/internal/middleware"
	"github.com/tomtom215/convene/internal/models"
)

// NewRouter assembles the chi router: middleware chain, health and
// metrics endpoints, and all API routes.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if !cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
	}

	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/health", h.Health)
	r.Get("/health/live", h.HealthLive)
	r.Get("/health/ready", h.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/by-email/{email}", h.GetUserByEmail)
			r.Route("/{user_id}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/", h.UpdateUser)
				r.Post("/interests", h.SetUserInterests)
				r.Post("/location", h.SetUserLocation)
				r.Get("/events", h.GetUserEvents)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.CreateEvent)
			r.Get("/", h.ListEvents)
			r.Get("/recommendations/{user_id}", h.RecommendEvents)
			r.Route("/{event_id}", func(r chi.Router) {
				r.Get("/", h.GetEvent)
				r.Put("/", h.UpdateEvent)
				r.Delete("/", h.DeleteEvent)
				r.Post("/rsvp", h.RSVP)
				r.Get("/attendees", h.GetEventAttendees)
			})
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/request", h.RequestConnection)
			r.Post("/respond", h.RespondConnection)
			r.Get("/user/{user_id}", h.ListUserConnections)
			r.Delete("/{connection_id}", h.DeleteConnection)
			r.Get("/recommendations/{user_id}", h.RecommendConnections)
			r.Get("/event/{event_id}/user/{user_id}", h.RecommendEventConnections)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/user/{user_id}", h.GetUserFeedback)
			r.Route("/{event_id}", func(r chi.Router) {
				r.Post("/", h.SubmitFeedback)
				r.Get("/", h.GetEventFeedback)
				r.Route("/user/{user_id}", func(r chi.Router) {
					r.Get("/", h.GetUserEventFeedback)
					r.Put("/", h.UpdateFeedback)
					r.Delete("/", h.DeleteFeedback)
				})
			})
		})

		r.Route("/preferences/{user_id}", func(r chi.Router) {
			r.Get("/", h.GetPreferences)
			r.Put("/", h.UpdatePreferences)
		})

		r.Route("/dashboard", func(r chi.Router) {
			// The organizer literal wins over the {event_id} param.
			r.Get("/organizer/{email}", h.GetOrganizerDashboard)
			r.Route("/{event_id}", func(r chi.Router) {
				r.Get("/comprehensive", h.GetComprehensiveDashboard)
				r.Get("/attendees", h.GetDashboardAttendees)
				r.Get("/feedback", h.GetDashboardFeedback)
				r.Get("/details", h.GetEventDetails)
			})
		})
	})

	return r
}
