package upload

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultMaxFileSize is the per-file streaming cutoff.
const DefaultMaxFileSize = 5 << 20 // 5 MiB

// Policy is the per-file validation contract. The declared content type is
// checked first, the filename extension second; both must pass. The type is
// client-declared and not verified against file contents.
type Policy struct {
	MaxFileSize  int64
	AllowedTypes []string
	AllowedExts  []string
}

func DefaultPolicy() *Policy {
	return &Policy{
		MaxFileSize:  DefaultMaxFileSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		AllowedExts:  []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}
}

// Check validates a single file part. Returns nil when both checks pass.
func (p *Policy) Check(contentType string, filename string) *Error {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if !slices.Contains(p.AllowedTypes, mediaType) {
		return NewError(CodeUnsupportedMimeType,
			"unsupported file type %q: allowed types are %s",
			mediaType, strings.Join(p.AllowedTypes, ", "))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(p.AllowedExts, ext) {
		return NewError(CodeUnsupportedExtension,
			"unsupported file extension %q: allowed extensions are %s",
			ext, strings.Join(p.AllowedExts, ", "))
	}

	return nil
}
