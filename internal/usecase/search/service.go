package search

import (
	"context"

	authdomain "fieldcms/backend/internal/domain/auth"
	contentdomain "fieldcms/backend/internal/domain/content"
	pagedomain "fieldcms/backend/internal/domain/page"
)

// Service runs substring searches across the whole catalogue.
type Service struct {
	agents   authdomain.AgentRepository
	pages    pagedomain.Repository
	contents contentdomain.Repository
}

// NewService constructs a search service over the three repositories.
func NewService(agents authdomain.AgentRepository, pages pagedomain.Repository, contents contentdomain.Repository) *Service {
	return &Service{
		agents:   agents,
		pages:    pages,
		contents: contents,
	}
}

// Results bundles matches from every entity type.
type Results struct {
	Agents   []*authdomain.Agent      `json:"agents"`
	Pages    []*pagedomain.Page       `json:"pages"`
	Contents []*contentdomain.Content `json:"contents"`
}

// All searches agents, pages and contents for the term.
func (s *Service) All(ctx context.Context, term string) (*Results, error) {
	agents, err := s.agents.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	contents, err := s.contents.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	for _, a := range agents {
		a.PasswordHash = ""
	}

	return &Results{
		Agents:   agents,
		Pages:    pages,
		Contents: contents,
	}, nil
}

// Pages searches pages only.
func (s *Service) Pages(ctx context.Context, term string) ([]*pagedomain.Page, error) {
	return s.pages.Search(ctx, term)
}

// Contents searches contents only.
func (s *Service) Contents(ctx context.Context, term string) ([]*contentdomain.Content, error) {
	return s.contents.Search(ctx, term)
}
