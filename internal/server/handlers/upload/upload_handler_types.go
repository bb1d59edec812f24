package upload

import (
	"github.com/pixeldrop/pixeldrop/internal/upload"
)

const (
	// field names on the wire
	FieldSingle  = "file"
	FieldMulti   = "files"
	FieldImage   = "image"
	FieldGallery = "gallery"

	// per-route caps
	MaxMultiFiles   = 3
	MaxGalleryFiles = 2
)

var singleForm = &upload.Form{
	Files: []upload.FileField{
		{Name: FieldSingle, MaxCount: 1, Required: true},
	},
}

var multiForm = &upload.Form{
	Files: []upload.FileField{
		{Name: FieldMulti, MaxCount: MaxMultiFiles, Required: true, Missing: "no files uploaded"},
	},
}

var mixedForm = &upload.Form{
	Files: []upload.FileField{
		{Name: FieldImage, MaxCount: 1, Required: true, Missing: "main image is required"},
		{Name: FieldGallery, MaxCount: MaxGalleryFiles},
	},
	Texts: []upload.TextField{
		{Name: "title", Default: "Untitled"},
		{Name: "description", Default: "No description"},
	},
}
