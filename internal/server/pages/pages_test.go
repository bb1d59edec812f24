package pages

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldrop/pixeldrop/internal/upload"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestIndexServesPageFromDisk(t *testing.T) {
	indexFile := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(indexFile, []byte("<h1>upload here</h1>"), 0o644))

	c, w := testContext()
	New(indexFile).Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "upload here")
}

func TestIndexMissingPageIs500(t *testing.T) {
	c, w := testContext()
	New(filepath.Join(t.TempDir(), "nope.html")).Index(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestUploadedPage(t *testing.T) {
	c, w := testContext()

	files := []*upload.StoredFile{
		{
			OriginalName: "cat.jpg",
			Name:         "1700000000000-abcd1234.jpg",
			ContentType:  "image/jpeg",
			Size:         2 << 20,
			Path:         "/uploads/1700000000000-abcd1234.jpg",
		},
	}
	New("").Uploaded(c, "Vacation", "Summer trip", files)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Vacation")
	assert.Contains(t, body, "Summer trip")
	assert.Contains(t, body, "cat.jpg")
	assert.Contains(t, body, "/uploads/1700000000000-abcd1234.jpg")
	assert.Contains(t, body, "image/jpeg")
	assert.Contains(t, body, "MB")
}

func TestUploadedPageEscapesUserInput(t *testing.T) {
	c, w := testContext()

	New("").Uploaded(c, "<script>alert(1)</script>", "", []*upload.StoredFile{
		{OriginalName: "<img>.jpg", Path: "/uploads/x.jpg"},
	})

	body := w.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestErrorPage(t *testing.T) {
	c, w := testContext()

	uerr := upload.NewError(upload.CodeFileTooLarge, "file is too large: maximum size is 5 MB")
	New("").Error(c, http.StatusBadRequest, uerr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "5 MB")
	assert.Contains(t, body, `href="/"`)
}
