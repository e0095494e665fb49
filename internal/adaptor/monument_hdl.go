package adaptor

import (
	"net/http"

	"monument-booking/internal/dto/request"
	"monument-booking/internal/usecase"
	"monument-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MonumentHandler struct {
	service usecase.MonumentService
	log     *zap.Logger
}

func NewMonumentHandler(service usecase.MonumentService, log *zap.Logger) *MonumentHandler {
	return &MonumentHandler{
		service: service,
		log:     log.With(zap.String("handler", "monument")),
	}
}

// GetMonuments handles GET /api/monuments (public)
func (h *MonumentHandler) GetMonuments(w http.ResponseWriter, r *http.Request) {
	req := request.PaginationFromQuery(r.URL.Query())

	monuments, err := h.service.GetMonuments(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get monuments")
		return
	}

	utils.ResponseSuccess(w, "success", monuments)
}

// GetMonumentByID handles GET /api/monuments/{id} (public)
func (h *MonumentHandler) GetMonumentByID(w http.ResponseWriter, r *http.Request) {
	monument, err := h.service.GetMonumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get monument by ID")
		return
	}

	utils.ResponseSuccess(w, "success", monument)
}

// GetQuote handles GET /api/monuments/{id}/quote?pax= (public)
func (h *MonumentHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	pax := utils.ParseInt(r.URL.Query().Get("pax"), 0)

	quote, err := h.service.GetQuote(r.Context(), chi.URLParam(r, "id"), pax)
	if err != nil {
		h.handleServiceError(w, err, "get quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateMonument handles POST /api/admin/monuments (admin only)
func (h *MonumentHandler) CreateMonument(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	monument, err := h.service.CreateMonument(r.Context(), utils.FormFields(r))
	if err != nil {
		h.handleServiceError(w, err, "create monument")
		return
	}

	utils.ResponseCreated(w, "success", monument)
}

func (h *MonumentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	respondServiceError(w, h.log, err, operation)
}
