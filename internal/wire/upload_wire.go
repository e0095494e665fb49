package wire

import (
	"monument-booking/internal/adaptor"
	"monument-booking/pkg/auth"
	"monument-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	tokens *auth.Service,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/upload-auth - Signature for direct browser uploads
		r.Get("/api/admin/upload-auth", uploadHandler.UploadAuth)

		// POST /api/admin/upload-img - Upload through the server
		r.Post("/api/admin/upload-img", uploadHandler.UploadImage)
	})
}
