package upload

import (
	"github.com/gin-gonic/gin"
)

// Multi accepts up to MaxMultiFiles images under the "files" field. Any
// violation rejects the whole batch.
func (h *UploadHandler) Multi(ctx *gin.Context) {
	result := h.process(ctx, multiForm)
	if result == nil {
		return
	}

	h.pages.Uploaded(ctx, "", "", result.Files.All())
}
