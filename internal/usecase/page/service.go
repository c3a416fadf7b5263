package page

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "fieldcms/backend/internal/domain/page"
)

// Service encapsulates page use cases.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a page service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for page creation.
type CreateInput struct {
	PageName     string  `json:"page_name"`
	SectionName  string  `json:"section_name"`
	Lang         string  `json:"lang"`
	ContentType  string  `json:"content_type"`
	Visible      *bool   `json:"visible"`
	DisplayOrder *int    `json:"display_order"`
	Attributes   *string `json:"attributes"`
}

// UpdateInput encapsulates partial page updates.
type UpdateInput struct {
	PageName     *string `json:"page_name"`
	SectionName  *string `json:"section_name"`
	Lang         *string `json:"lang"`
	ContentType  *string `json:"content_type"`
	Visible      *bool   `json:"visible"`
	DisplayOrder *int    `json:"display_order"`
	Attributes   *string `json:"attributes"`
}

// Create stores a new page after validation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Page, error) {
	input.PageName = strings.TrimSpace(input.PageName)
	input.SectionName = strings.TrimSpace(input.SectionName)
	if input.PageName == "" {
		return nil, errors.New("page_name is required")
	}
	if input.SectionName == "" {
		return nil, errors.New("section_name is required")
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}
	displayOrder := 0
	if input.DisplayOrder != nil {
		displayOrder = *input.DisplayOrder
	}

	now := s.nowFunc().UTC()
	page := &domain.Page{
		PageName:     input.PageName,
		SectionName:  input.SectionName,
		Lang:         input.Lang,
		ContentType:  input.ContentType,
		Visible:      visible,
		DisplayOrder: displayOrder,
		Attributes:   input.Attributes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// List retrieves pages, optionally narrowed to one section.
func (s *Service) List(ctx context.Context, sectionName string) ([]*domain.Page, error) {
	return s.repo.List(ctx, strings.TrimSpace(sectionName))
}

// Get fetches a page by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Page, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies partial updates to a page.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Page, error) {
	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PageName != nil && strings.TrimSpace(*input.PageName) == "" {
		return nil, errors.New("page_name cannot be empty")
	}
	if input.SectionName != nil && strings.TrimSpace(*input.SectionName) == "" {
		return nil, errors.New("section_name cannot be empty")
	}

	page.Update(input.PageName, input.SectionName, input.Lang, input.ContentType, input.Visible, input.DisplayOrder, input.Attributes)
	page.UpdatedAt = s.nowFunc().UTC()

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
