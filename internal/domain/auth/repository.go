package auth

import "context"

// AgentRepository defines persistence operations for agent accounts.
type AgentRepository interface {
	Create(ctx context.Context, agent *Agent) error
	GetByNumber(ctx context.Context, agentNumber string) (*Agent, error)
	GetByID(ctx context.Context, id int64) (*Agent, error)
	List(ctx context.Context) ([]*Agent, error)
	UpdateStatus(ctx context.Context, id int64, isActive bool) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Agent, error)
}
