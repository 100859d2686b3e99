// Package upload stores multipart image files under a public directory and
// hands back the server-relative paths persisted inside records.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file ceiling.
const MaxFileSize = 5 << 20 // 5 MB

// PublicPrefix is the URL prefix the stored directory is served under.
const PublicPrefix = "/uploads/"

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// FileError marks a violation caused by an actually attached file; only
// these are fatal to the surrounding request.
type FileError struct {
	msg string
}

func (e *FileError) Error() string {
	return e.msg
}

type Uploader struct {
	dir         string
	maxFileSize int64
}

func NewUploader(dir string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Uploader{dir: dir, maxFileSize: MaxFileSize}, nil
}

// Save validates and writes one file, returning its public path. Generated
// filenames are unique so concurrent requests cannot collide on disk.
func (u *Uploader) Save(fh *multipart.FileHeader) (string, error) {
	contentType := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", &FileError{msg: "Only image files are allowed (jpeg, png, gif, webp)"}
	}
	if fh.Size > u.maxFileSize {
		return "", &FileError{msg: fmt.Sprintf("File too large (max %d MB)", u.maxFileSize>>20)}
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}
	return PublicPrefix + name, nil
}

// SaveAll stores up to max files. A request with no attached files is not
// an error; the caller proceeds without images.
func (u *Uploader) SaveAll(fhs []*multipart.FileHeader, max int) ([]string, error) {
	if len(fhs) == 0 {
		return nil, nil
	}
	if len(fhs) > max {
		return nil, &FileError{msg: fmt.Sprintf("Maximum %d files allowed", max)}
	}

	paths := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		p, err := u.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Dir exposes the storage directory for static file serving.
func (u *Uploader) Dir() string {
	return u.dir
}
