package store

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pixeldrop/pixeldrop/internal/upload"
)

// Store writes accepted file parts into a single upload directory and serves
// as the cleanup sink for rejected requests. Generated names combine a
// millisecond timestamp with a random suffix, so concurrent requests never
// need locking.
type Store struct {
	dir        string
	publicPath string
}

// New creates the upload directory if absent.
func New(dir string, publicPath string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Store{dir: dir, publicPath: publicPath}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Put streams the part to disk, cutting the copy off past maxSize bytes.
// On overflow or a write failure the partially written file is returned
// together with the error so the processor can hand it to Remove.
func (s *Store) Put(part *upload.Part, maxSize int64) (*upload.StoredFile, error) {
	name := GenerateName(part.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, upload.NewError(upload.CodeStorageIO, "failed to store %q: %s", part.Filename, err)
	}

	written, copyErr := io.Copy(dst, io.LimitReader(part.Body, maxSize+1))
	closeErr := dst.Close()

	stored := &upload.StoredFile{
		Field:        part.Field,
		OriginalName: part.Filename,
		Name:         name,
		ContentType:  part.ContentType,
		Size:         written,
		Path:         path.Join(s.publicPath, name),
	}

	if copyErr != nil {
		return stored, upload.NewError(upload.CodeStorageIO, "failed to store %q: %s", part.Filename, copyErr)
	}
	if closeErr != nil {
		return stored, upload.NewError(upload.CodeStorageIO, "failed to store %q: %s", part.Filename, closeErr)
	}
	if written > maxSize {
		return stored, upload.NewError(upload.CodeFileTooLarge,
			"file %q is too large: maximum size is %d MB", part.Filename, maxSize>>20)
	}

	return stored, nil
}

// Remove deletes every file in the container, whatever its shape. Delete
// errors are logged and do not change the already-decided response.
func (s *Store) Remove(files upload.Received) {
	if files == nil {
		return
	}
	for _, f := range files.All() {
		target := filepath.Join(s.dir, f.Name)
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			slog.Error("failed to remove uploaded file", "path", target, "error", err)
		}
	}
}

// GenerateName builds `<unix-millis>-<random-suffix><ext>` keeping the
// original extension, lower-cased. Collisions are treated as negligible,
// not impossible.
func GenerateName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
