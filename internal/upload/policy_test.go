package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyCheck(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name        string
		contentType string
		filename    string
		wantCode    string
	}{
		{
			name:        "jpeg accepted",
			contentType: "image/jpeg",
			filename:    "cat.jpg",
		},
		{
			name:        "png accepted",
			contentType: "image/png",
			filename:    "photo.png",
		},
		{
			name:        "webp accepted",
			contentType: "image/webp",
			filename:    "pic.webp",
		},
		{
			name:        "uppercase extension accepted",
			contentType: "image/jpeg",
			filename:    "CAT.JPG",
		},
		{
			name:        "uppercase media type accepted",
			contentType: "IMAGE/GIF",
			filename:    "anim.gif",
		},
		{
			name:        "charset parameter ignored",
			contentType: "image/png; charset=utf-8",
			filename:    "photo.png",
		},
		{
			name:        "text file rejected",
			contentType: "text/plain",
			filename:    "notes.txt",
			wantCode:    CodeUnsupportedMimeType,
		},
		{
			name:        "pdf rejected",
			contentType: "application/pdf",
			filename:    "doc.pdf",
			wantCode:    CodeUnsupportedMimeType,
		},
		{
			name:        "valid type with wrong extension rejected",
			contentType: "image/png",
			filename:    "photo.txt",
			wantCode:    CodeUnsupportedExtension,
		},
		{
			name:        "valid type with no extension rejected",
			contentType: "image/png",
			filename:    "photo",
			wantCode:    CodeUnsupportedExtension,
		},
		{
			name:        "type checked before extension",
			contentType: "text/plain",
			filename:    "notes.exe",
			wantCode:    CodeUnsupportedMimeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.contentType, tt.filename)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			assert.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
		})
	}
}

func TestPolicyCheckMessages(t *testing.T) {
	policy := DefaultPolicy()

	err := policy.Check("text/plain", "notes.txt")
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "text/plain")
	assert.Contains(t, err.Message, "image/jpeg")

	err = policy.Check("image/png", "photo.txt")
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, ".txt")
	assert.Contains(t, err.Message, ".png")
}
