package upload

import (
	"errors"
	"io"
)

// maxTextValueSize bounds plain-text form field reads.
const maxTextValueSize = 64 << 10

// Storage persists accepted file parts and removes them again on failure.
type Storage interface {
	// Put streams a part to disk under a generated unique name, cutting
	// off after maxSize bytes. When the part overflows or the write
	// fails, Put returns the partially written file alongside the error
	// so the caller can include it in cleanup.
	Put(part *Part, maxSize int64) (*StoredFile, error)

	// Remove deletes every file in the container. Individual delete
	// failures are logged, not returned.
	Remove(files Received)
}

// Result is a successful upload: the stored files in the route's shape plus
// the accompanying text fields with defaults applied.
type Result struct {
	Files  Received
	Values map[string]string
}

// Process drains the source, enforcing the form shape and the per-file
// policy on each part. Accepted files are written through storage as their
// bytes arrive. On the first violation it deletes everything written so far
// and returns an *Error describing the failed check; the request then holds
// either all validated parts fully written, or none.
func Process(form *Form, src Source, storage Storage, policy *Policy) (*Result, error) {
	counts := make(map[string]int, len(form.Files))
	received := newReceivedBuilder(form)

	values := make(map[string]string, len(form.Texts))
	for _, t := range form.Texts {
		values[t.Name] = t.Default
	}

	fail := func(err error) (*Result, error) {
		storage.Remove(received.build())
		return nil, err
	}

	for {
		part, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(NewError(CodeStorageIO, "failed to read request body: %s", err))
		}

		if !part.IsFile() {
			if !form.hasText(part.Field) {
				continue
			}
			value, err := readTextValue(part.Body)
			if err != nil {
				return fail(NewError(CodeStorageIO, "failed to read form field %q: %s", part.Field, err))
			}
			if value != "" {
				values[part.Field] = value
			}
			continue
		}

		field := form.fileField(part.Field)
		if field == nil {
			return fail(NewError(CodeUnexpectedFile, "unexpected file in field %q", part.Field))
		}

		counts[field.Name]++
		if counts[field.Name] > field.MaxCount {
			return fail(NewError(CodeTooManyFiles,
				"too many files for field %q: maximum is %d", field.Name, field.MaxCount))
		}

		if verr := policy.Check(part.ContentType, part.Filename); verr != nil {
			return fail(verr)
		}

		stored, err := storage.Put(part, policy.MaxFileSize)
		if stored != nil {
			// partial writes are tracked too, so cleanup removes them
			received.add(field.Name, stored)
		}
		if err != nil {
			return fail(err)
		}
	}

	for _, field := range form.Files {
		if field.Required && counts[field.Name] == 0 {
			return fail(field.missingError())
		}
	}

	return &Result{
		Files:  received.build(),
		Values: values,
	}, nil
}

func readTextValue(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxTextValueSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// receivedBuilder accumulates stored files and exposes them in the shape
// matching the form: One for a single-file field, Many for one multi-file
// field, ByField when several fields may carry files.
type receivedBuilder struct {
	form    *Form
	byField map[string][]*StoredFile
}

func newReceivedBuilder(form *Form) *receivedBuilder {
	return &receivedBuilder{
		form:    form,
		byField: make(map[string][]*StoredFile, len(form.Files)),
	}
}

func (b *receivedBuilder) add(field string, file *StoredFile) {
	b.byField[field] = append(b.byField[field], file)
}

func (b *receivedBuilder) build() Received {
	if len(b.form.Files) == 1 {
		field := b.form.Files[0]
		files := b.byField[field.Name]
		if field.MaxCount == 1 {
			var file *StoredFile
			if len(files) > 0 {
				file = files[0]
			}
			return One{File: file}
		}
		return Many{List: files}
	}

	order := make([]string, 0, len(b.form.Files))
	for _, field := range b.form.Files {
		order = append(order, field.Name)
	}
	return ByField{Fields: b.byField, Order: order}
}
