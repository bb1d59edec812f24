package pages

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"

	_ "embed"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/pixeldrop/pixeldrop/internal/upload"
)

//go:embed uploaded.html.tpl
var uploadedTmpl string

//go:embed error.html.tpl
var errorTmpl string

// uploadedData contains data for the confirmation template
type uploadedData struct {
	Title       string
	Description string
	Files       []*upload.StoredFile
}

// errorData contains data for the error template
type errorData struct {
	Status  int
	Message string
}

// Pages renders the HTML surface: the static start page from disk and the
// embedded confirmation/error templates.
type Pages struct {
	indexFile   string
	tplUploaded *template.Template
	tplError    *template.Template
}

// New parses the embedded templates. indexFile is read from disk on every
// request so a missing page surfaces as a 500, matching the static-page
// contract.
func New(indexFile string) *Pages {
	funcMap := template.FuncMap{
		"humanizeSize": func(size int64) string {
			return humanize.Bytes(uint64(size))
		},
	}

	tplUploaded := template.Must(template.New("uploaded").Funcs(funcMap).Parse(uploadedTmpl))
	tplError := template.Must(template.New("error").Funcs(funcMap).Parse(errorTmpl))

	return &Pages{
		indexFile:   indexFile,
		tplUploaded: tplUploaded,
		tplError:    tplError,
	}
}

// Index serves the upload form page from disk.
func (p *Pages) Index(c *gin.Context) {
	data, err := os.ReadFile(p.indexFile)
	if err != nil {
		slog.Error("failed to load index page", "path", p.indexFile, "error", err)
		p.Error(c, http.StatusInternalServerError,
			upload.NewError(upload.CodeTemplateLoad, "start page is missing"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// Uploaded renders the confirmation page listing the stored files. title and
// description are empty for routes without text fields.
func (p *Pages) Uploaded(c *gin.Context, title string, description string, files []*upload.StoredFile) {
	data := uploadedData{
		Title:       title,
		Description: description,
		Files:       files,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := p.tplUploaded.Execute(c.Writer, data); err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
	}
}

// Error renders the failure page with the human-readable message and a link
// back to the start page.
func (p *Pages) Error(c *gin.Context, status int, uerr *upload.Error) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := p.tplError.Execute(c.Writer, errorData{Status: status, Message: uerr.Message}); err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
