package content

import (
	"context"
	"errors"
	"log"
	"time"

	domain "fieldcms/backend/internal/domain/content"
	"fieldcms/backend/internal/infrastructure/storage"
)

// FileRemover deletes stored image files that contents no longer reference.
type FileRemover interface {
	Remove(name string) error
}

// Service encapsulates content use cases.
type Service struct {
	repo    domain.Repository
	files   FileRemover
	nowFunc func() time.Time
}

// NewService constructs a content service. files may be nil when no image
// cleanup is wanted.
func NewService(repo domain.Repository, files FileRemover) *Service {
	return &Service{
		repo:    repo,
		files:   files,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for content creation.
type CreateInput struct {
	RefID     int64   `json:"ref_id"`
	ShortDesc *string `json:"short_desc"`
	LongDesc  *string `json:"long_desc"`
	ImagePath *string `json:"image_path"`
	Title     *string `json:"title"`
}

// UpdateInput encapsulates partial content updates.
type UpdateInput struct {
	RefID     *int64  `json:"ref_id"`
	ShortDesc *string `json:"short_desc"`
	LongDesc  *string `json:"long_desc"`
	ImagePath *string `json:"image_path"`
	Title     *string `json:"title"`
}

// Create stores a new content record.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Content, error) {
	if input.RefID <= 0 {
		return nil, errors.New("ref_id is required")
	}

	now := s.nowFunc().UTC()
	content := &domain.Content{
		RefID:     input.RefID,
		ShortDesc: input.ShortDesc,
		LongDesc:  input.LongDesc,
		ImagePath: input.ImagePath,
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// List retrieves all contents.
func (s *Service) List(ctx context.Context) ([]*domain.Content, error) {
	return s.repo.List(ctx)
}

// ListByRef retrieves contents attached to the referenced page.
func (s *Service) ListByRef(ctx context.Context, refID int64) ([]*domain.Content, error) {
	return s.repo.ListByRef(ctx, refID)
}

// Get fetches a content record by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Content, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies partial updates to a content record. When the image path
// changes, the previously stored file is deleted from disk.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Content, error) {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ImagePath != nil && content.ImagePath != nil && *content.ImagePath != *input.ImagePath {
		s.removeFile(*content.ImagePath)
	}

	content.Update(input.RefID, input.ShortDesc, input.LongDesc, input.ImagePath, input.Title)
	content.UpdatedAt = s.nowFunc().UTC()

	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Delete removes a content record along with its stored image, if any.
func (s *Service) Delete(ctx context.Context, id int64) error {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if content.ImagePath != nil {
		s.removeFile(*content.ImagePath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) removeFile(name string) {
	if s.files == nil || name == "" {
		return
	}
	if err := s.files.Remove(name); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("removing orphaned image %q: %v", name, err)
	}
}
