package adaptor

import (
	"net/http"

	"monument-booking/internal/usecase"
	"monument-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTicket handles GET /api/bookings/{id}/ticket (public)
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.GetTicket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// GetQRCode handles GET /api/bookings/{id}/ticket/qr?size= (public)
func (h *TicketHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	size := utils.ParseInt(r.URL.Query().Get("size"), 0)

	png, err := h.service.RenderQR(r.Context(), chi.URLParam(r, "id"), size)
	if err != nil {
		h.handleServiceError(w, err, "render QR code")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.ResponseFile(w, "image/png", "", png)
}

// DownloadPDF handles GET /api/bookings/{id}/ticket/pdf (public)
func (h *TicketHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	doc, filename, err := h.service.RenderPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "render PDF ticket")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.ResponseFile(w, "application/pdf", filename, doc)
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	respondServiceError(w, h.log, err, operation)
}
