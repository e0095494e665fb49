// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"monument-booking/internal/adaptor"
	"monument-booking/internal/data/repository"
	"monument-booking/internal/imagestore"
	"monument-booking/internal/usecase"
	"monument-booking/pkg/auth"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/database"
	"monument-booking/pkg/middleware"
	"monument-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	store := imagestore.NewClient(config.ImageKit, nil)
	tokens := auth.NewService(config.JWT.Secret)

	// Initialize services dan handlers
	service := usecase.NewService(repo, store, config, clock.NewRealClock(), logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, db, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	tokens *auth.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireMonument(r, handler.Monument, handler.Wizard, tokens, logger)
	wireBooking(r, handler.Booking, handler.Ticket, tokens, logger)
	wireUpload(r, handler.Upload, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
