package wire

import (
	"monument-booking/internal/adaptor"
	"monument-booking/pkg/auth"
	"monument-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMonument(
	r chi.Router,
	monumentHandler *adaptor.MonumentHandler,
	wizardHandler *adaptor.WizardHandler,
	tokens *auth.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/monuments - List monuments, newest first
	r.Get("/api/monuments", monumentHandler.GetMonuments)

	// GET /api/monuments/{id} - Monument details
	r.Get("/api/monuments/{id}", monumentHandler.GetMonumentByID)

	// GET /api/monuments/{id}/quote?pax= - Price summary before booking
	r.Get("/api/monuments/{id}/quote", monumentHandler.GetQuote)

	// POST /api/monuments/{id}/booking/wizard - One booking wizard transition
	r.Post("/api/monuments/{id}/booking/wizard", wizardHandler.Transition)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log)) // Must be authenticated
		r.Use(middleware.Admin(log))        // Must be admin

		// POST /api/admin/monuments - Create monument from the admin form
		r.Post("/api/admin/monuments", monumentHandler.CreateMonument)
	})
}
