package upload

import (
	"github.com/gin-gonic/gin"
)

// Single accepts exactly one image under the "file" field.
func (h *UploadHandler) Single(ctx *gin.Context) {
	result := h.process(ctx, singleForm)
	if result == nil {
		return
	}

	h.pages.Uploaded(ctx, "", "", result.Files.All())
}
