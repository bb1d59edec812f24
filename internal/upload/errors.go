package upload

import (
	"errors"
	"fmt"
)

const (
	// Validation errors
	CodeNoFile               = "E_NO_FILE"                // required file part is missing from the request
	CodeUnsupportedMimeType  = "E_UNSUPPORTED_MIME_TYPE"  // declared content type is not on the allow-list
	CodeUnsupportedExtension = "E_UNSUPPORTED_EXTENSION"  // filename extension is not on the allow-list
	CodeFileTooLarge         = "E_FILE_TOO_LARGE"         // a file part exceeded the per-file size limit
	CodeTooManyFiles         = "E_TOO_MANY_FILES"         // a field received more files than its cap
	CodeUnexpectedFile       = "E_UNEXPECTED_FILE"        // a file arrived under an undeclared field name

	// Server errors
	CodeStorageIO    = "E_STORAGE_IO"    // disk read/write/delete failure
	CodeTemplateLoad = "E_TEMPLATE_LOAD" // static page missing or unreadable
)

// Error is the verdict attached to a rejected upload. Message is user-facing.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upload error: code=%s, message=%s", e.Code, e.Message)
}

func NewError(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError unwraps err into an *Error, or wraps it as a storage failure so
// every path out of the processor carries a code.
func AsError(err error) *Error {
	var uerr *Error
	if errors.As(err, &uerr) {
		return uerr
	}
	return NewError(CodeStorageIO, "storage error: %s", err)
}
