package agent

import (
	"context"
	"errors"
	"testing"

	domain "fieldcms/backend/internal/domain/auth"
)

type mockAgentRepo struct {
	domain.AgentRepository

	getByIDFn func(ctx context.Context, id int64) (*domain.Agent, error)
	listFn    func(ctx context.Context) ([]*domain.Agent, error)
}

func (m *mockAgentRepo) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAgentRepo) List(ctx context.Context) ([]*domain.Agent, error) {
	return m.listFn(ctx)
}

func TestListBlanksPasswordHashes(t *testing.T) {
	stored := []*domain.Agent{
		{ID: 1, AgentNumber: "A001", PasswordHash: "$2a$12$hash1", IsActive: true},
		{ID: 2, AgentNumber: "A002", PasswordHash: "$2a$12$hash2"},
	}
	repo := &mockAgentRepo{listFn: func(context.Context) ([]*domain.Agent, error) {
		return stored, nil
	}}

	svc := NewService(repo)
	agents, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("len = %d, want 2", len(agents))
	}
	for _, a := range agents {
		if a.PasswordHash != "" {
			t.Errorf("agent %d leaks its password hash", a.ID)
		}
	}
	// The repository's own copies are left untouched.
	if stored[0].PasswordHash == "" {
		t.Error("sanitization mutated the repository result")
	}
}

func TestGetBlanksPasswordHash(t *testing.T) {
	repo := &mockAgentRepo{getByIDFn: func(_ context.Context, id int64) (*domain.Agent, error) {
		if id != 7 {
			return nil, domain.ErrAgentNotFound
		}
		return &domain.Agent{ID: 7, AgentNumber: "A007", PasswordHash: "$2a$12$hash"}, nil
	}}

	svc := NewService(repo)
	agent, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if agent.PasswordHash != "" {
		t.Error("agent leaks its password hash")
	}

	if _, err := svc.Get(context.Background(), 8); !errors.Is(err, domain.ErrAgentNotFound) {
		t.Fatalf("got %v, want ErrAgentNotFound", err)
	}
}
