package upload

// FileField declares one file-carrying form field and its cap.
type FileField struct {
	Name     string
	MaxCount int
	Required bool
	// Missing overrides the default "no file uploaded" message for a
	// missing required field.
	Missing string
}

// TextField declares a plain-text form field with its fallback value.
type TextField struct {
	Name    string
	Default string
}

// Form is the expected shape of an upload request: which fields may carry
// files, how many, and which text fields accompany them.
type Form struct {
	Files []FileField
	Texts []TextField
}

func (f *Form) fileField(name string) *FileField {
	for i := range f.Files {
		if f.Files[i].Name == name {
			return &f.Files[i]
		}
	}
	return nil
}

func (f *Form) hasText(name string) bool {
	for _, t := range f.Texts {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (f *FileField) missingError() *Error {
	msg := f.Missing
	if msg == "" {
		msg = "no file uploaded"
	}
	return NewError(CodeNoFile, "%s", msg)
}
