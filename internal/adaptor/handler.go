package adaptor

import (
	"net/http"
	"strings"

	"monument-booking/internal/usecase"
	"monument-booking/pkg/utils"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const maxFormMemory = 10 << 20

type Handler struct {
	Monument *MonumentHandler
	Booking  *BookingHandler
	Ticket   *TicketHandler
	Wizard   *WizardHandler
	Upload   *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Monument: NewMonumentHandler(service.Monument, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
		Wizard:   NewWizardHandler(service.Wizard, log),
		Upload:   NewUploadHandler(service.Upload, log),
	}
}

// parseForm accepts both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// respondServiceError maps a service error to a response. Service errors
// carry a message that is safe to show, so it is used as is.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var fieldErrs any
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		fieldErrs = verr.Fields
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), fieldErrs)

	case errors.Is(err, usecase.ErrStore),
		errors.Is(err, usecase.ErrArtifact),
		errors.Is(err, usecase.ErrUpstream),
		errors.Is(err, usecase.ErrNotConfigured):
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseJSON(w, http.StatusInternalServerError, false, err.Error(), nil, fieldErrs)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
