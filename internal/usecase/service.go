package usecase

import (
	"monument-booking/internal/data/repository"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Monument MonumentService
	Booking  BookingService
	Wizard   WizardService
	Ticket   TicketService
	Upload   UploadService
}

func NewService(repo *repository.Repository, store ImageStore, config *utils.Config, clk clock.Clock, log *zap.Logger) *Service {
	booking := NewBookingService(repo, config, clk, log)
	return &Service{
		Monument: NewMonumentService(repo, clk, log),
		Booking:  booking,
		Wizard:   NewWizardService(repo, booking, config, clk, log),
		Ticket:   NewTicketService(repo, config, clk, log),
		Upload:   NewUploadService(store, clk, log),
	}
}
