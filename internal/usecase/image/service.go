package image

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"fieldcms/backend/internal/infrastructure/storage"

	"github.com/google/uuid"
)

// ErrNotFound indicates the requested image does not exist.
var ErrNotFound = errors.New("image not found")

// Service manages uploaded image files on top of a disk store.
type Service struct {
	store   *storage.DiskStore
	nowFunc func() time.Time
}

// NewService constructs an image service.
func NewService(store *storage.DiskStore) *Service {
	return &Service{
		store:   store,
		nowFunc: time.Now,
	}
}

// Upload stores the file under a fresh collision-free name derived from the
// original extension and returns the stored filename plus its public path.
func (s *Service) Upload(originalFilename string, r io.Reader) (filename, path string, err error) {
	ext := strings.TrimPrefix(filepath.Ext(originalFilename), ".")
	if ext == "" {
		ext = "jpg"
	}

	filename = storage.SanitizeName(fmt.Sprintf("%s_%d.%s", uuid.NewString(), s.nowFunc().Unix(), ext))
	if err := s.store.Save(filename, r); err != nil {
		return "", "", err
	}
	return filename, "/images/" + filename, nil
}

// Open returns a reader over the stored image together with its content type.
func (s *Service) Open(filename string) (io.ReadCloser, string, error) {
	rc, err := s.store.Open(filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return rc, ContentType(filename), nil
}

// Delete removes the stored image.
func (s *Service) Delete(filename string) error {
	if err := s.store.Remove(filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ContentType derives a MIME type from the filename extension.
func ContentType(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
