package adaptor

import (
	"encoding/json"
	"net/http"

	"monument-booking/internal/dto/request"
	"monument-booking/internal/usecase"
	"monument-booking/pkg/utils"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// Transition handles POST /api/monuments/{id}/booking/wizard (public)
func (h *WizardHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req request.WizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.Transition(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		// a rejected step still returns the state to redisplay
		if state != nil && errors.Is(err, usecase.ErrInvalidInput) {
			h.log.Warn("Wizard step rejected",
				zap.Int("step", state.Step),
				zap.String("reason", err.Error()))
			var fieldErrs any
			if len(state.Errors) > 0 {
				fieldErrs = state.Errors
			}
			utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), state, fieldErrs)
			return
		}
		h.handleServiceError(w, err, "booking wizard")
		return
	}

	if state.Booking != nil {
		utils.ResponseCreated(w, "success", state)
		return
	}
	utils.ResponseSuccess(w, "success", state)
}

func (h *WizardHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	respondServiceError(w, h.log, err, operation)
}
