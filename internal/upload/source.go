package upload

import (
	"io"
	"mime/multipart"
	"path/filepath"
)

// Part is one entry of a multipart body. Filename is empty for plain-text
// form fields. Body is only valid until the next call to Source.Next.
type Part struct {
	Field       string
	Filename    string
	ContentType string
	Body        io.Reader
}

// IsFile reports whether the part carries a file rather than a text value.
func (p *Part) IsFile() bool {
	return p.Filename != ""
}

// Source yields the parts of a request body in wire order. It is finite and
// not restartable. Next returns io.EOF after the last part.
type Source interface {
	Next() (*Part, error)
}

type multipartSource struct {
	mr *multipart.Reader
}

// NewMultipartSource wraps a streaming multipart reader. Advancing the
// source discards any unread bytes of the previous part.
func NewMultipartSource(mr *multipart.Reader) Source {
	return &multipartSource{mr: mr}
}

func (s *multipartSource) Next() (*Part, error) {
	part, err := s.mr.NextPart()
	if err != nil {
		return nil, err
	}

	filename := part.FileName()
	if filename != "" {
		// browsers may send a full client-side path
		filename = filepath.Base(filename)
	}

	return &Part{
		Field:       part.FormName(),
		Filename:    filename,
		ContentType: part.Header.Get("Content-Type"),
		Body:        part,
	}, nil
}
