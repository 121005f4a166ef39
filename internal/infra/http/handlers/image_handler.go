package handlers

import (
	"errors"
	"net/http"

	"github.com/siyam-display/catalog-api/internal/infra/http/middleware"
	"github.com/siyam-display/catalog-api/internal/usecase"
)

// ImageHandler triggers the bulk upload of the local product-image
// directory to the public bucket.
type ImageHandler struct {
	Upload *usecase.UploadImagesUseCase
}

func NewImageHandler(upload *usecase.UploadImagesUseCase) *ImageHandler {
	return &ImageHandler{Upload: upload}
}

func (h *ImageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.Upload.Execute(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoImages) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": "No image files found",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to upload images",
			"details": err.Error(),
		})
		return
	}

	for range output.Successful {
		middleware.RecordImageUpload("success")
	}
	for range output.Failed {
		middleware.RecordImageUpload("failure")
	}

	writeJSON(w, http.StatusOK, output)
}
