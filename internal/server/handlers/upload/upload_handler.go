package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixeldrop/pixeldrop/internal/server/pages"
	"github.com/pixeldrop/pixeldrop/internal/upload"
	"github.com/pixeldrop/pixeldrop/internal/upload/store"
)

type UploadHandler struct {
	store  *store.Store
	pages  *pages.Pages
	policy *upload.Policy
}

func New(store *store.Store, pages *pages.Pages, policy *upload.Policy) *UploadHandler {
	return &UploadHandler{
		store:  store,
		pages:  pages,
		policy: policy,
	}
}

// process runs one request body through the shared validation/persistence
// pipeline and renders the failure page when the verdict is a rejection.
// Returns nil after responding on failure.
func (h *UploadHandler) process(ctx *gin.Context, form *upload.Form) *upload.Result {
	mr, err := ctx.Request.MultipartReader()
	if err != nil {
		ctx.Error(err)
		h.pages.Error(ctx, http.StatusBadRequest,
			upload.NewError(upload.CodeNoFile, "no file uploaded"))
		return nil
	}

	result, err := upload.Process(form, upload.NewMultipartSource(mr), h.store, h.policy)
	if err != nil {
		ctx.Error(err)
		uerr := upload.AsError(err)
		h.pages.Error(ctx, statusFor(uerr), uerr)
		return nil
	}

	return result
}

// statusFor maps verdicts to response codes: validation failures are the
// client's fault, storage failures are ours.
func statusFor(err *upload.Error) int {
	if err.Code == upload.CodeStorageIO {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
