package upload

import (
	"github.com/gin-gonic/gin"
)

// Mixed accepts a required "image", an optional "gallery" of up to
// MaxGalleryFiles, plus title/description text fields with defaults.
func (h *UploadHandler) Mixed(ctx *gin.Context) {
	result := h.process(ctx, mixedForm)
	if result == nil {
		return
	}

	h.pages.Uploaded(ctx,
		result.Values["title"],
		result.Values["description"],
		result.Files.All())
}
