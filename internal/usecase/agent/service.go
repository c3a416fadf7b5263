package agent

import (
	"context"

	domain "fieldcms/backend/internal/domain/auth"
)

// Service provides agent account management use cases. The auth subsystem
// only reads agents during login; status changes made here never invalidate
// tokens that are already issued.
type Service struct {
	repo domain.AgentRepository
}

// NewService constructs an agent service around the provided repository.
func NewService(repo domain.AgentRepository) *Service {
	return &Service{repo: repo}
}

// List returns all agents with their password hashes blanked.
func (s *Service) List(ctx context.Context) ([]*domain.Agent, error) {
	agents, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return sanitizeAgents(agents), nil
}

// Get retrieves a single agent by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Agent, error) {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeAgent(agent), nil
}

// UpdateStatus toggles whether the agent may log in. Outstanding tokens stay
// valid until their own expiry.
func (s *Service) UpdateStatus(ctx context.Context, id int64, isActive bool) error {
	return s.repo.UpdateStatus(ctx, id, isActive)
}

// Delete removes the target agent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func sanitizeAgent(a *domain.Agent) *domain.Agent {
	if a == nil {
		return nil
	}
	copy := *a
	copy.PasswordHash = ""
	return &copy
}

func sanitizeAgents(items []*domain.Agent) []*domain.Agent {
	out := make([]*domain.Agent, 0, len(items))
	for _, item := range items {
		out = append(out, sanitizeAgent(item))
	}
	return out
}
