package adaptor

import (
	"net/http"

	"monument-booking/internal/usecase"
	"monument-booking/pkg/utils"

	"go.uber.org/zap"
)

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// UploadAuth handles GET /api/admin/upload-auth (admin only)
func (h *UploadHandler) UploadAuth(w http.ResponseWriter, r *http.Request) {
	auth, err := h.service.UploadAuth(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "sign upload auth")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// UploadImage handles POST /api/admin/upload-img (admin only)
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		utils.ResponseBadRequest(w, usecase.MsgNoFile, nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, usecase.MsgNoFile, nil)
		return
	}
	defer file.Close()

	uploaded, err := h.service.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		h.handleServiceError(w, err, "upload image")
		return
	}

	utils.ResponseSuccess(w, "success", uploaded)
}

func (h *UploadHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	respondServiceError(w, h.log, err, operation)
}
