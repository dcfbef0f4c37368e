package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/santaluzia/hospital-booking/internal/booking"
	"github.com/santaluzia/hospital-booking/internal/content"
	"github.com/santaluzia/hospital-booking/internal/identity"
	"github.com/santaluzia/hospital-booking/internal/schedule"
)

type RouterConfig struct {
	Sessions *identity.Manager
	Booking  *booking.Service
	Roster   *schedule.Roster
	Inbox    *content.Inbox
	Store    identity.Store
	Env      string
	Version  string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Health endpoints
	health := NewHealthHandler(cfg.Store, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Public pages
	r.Get("/", homeHandler(cfg.Roster))
	r.Get("/doctors", doctorsHandler(cfg.Roster))
	r.Get("/services", servicesHandler())
	r.Get("/about", aboutHandler())
	r.Get("/faq", faqHandler())
	r.Get("/contact", contactInfoHandler())
	r.Post("/contact", contactSubmitHandler(cfg.Inbox))

	// Authentication
	r.Post("/login", loginHandler(cfg.Sessions))
	r.Post("/register", registerHandler(cfg.Sessions))

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(RequireSession(cfg.Sessions))

		r.Post("/logout", logoutHandler(cfg.Sessions))
		r.Get("/profile", getProfileHandler())
		r.Patch("/profile", updateProfileHandler())

		r.Get("/appointments", agendaHandler(cfg.Booking))
		r.Post("/appointments/new", startDraftHandler(cfg.Booking))
		r.Get("/appointments/new", getDraftHandler(cfg.Booking))
		r.Put("/appointments/new", updateDraftHandler(cfg.Booking))
		r.Post("/appointments/new/next", nextStepHandler(cfg.Booking))
		r.Post("/appointments/new/back", backStepHandler(cfg.Booking))
		r.Post("/appointments/new/confirm", confirmDraftHandler(cfg.Booking))
	})

	return r
}
