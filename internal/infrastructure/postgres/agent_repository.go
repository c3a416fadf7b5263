package postgres

import (
	"context"
	"errors"

	domain "fieldcms/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AgentRepository persists agent accounts in PostgreSQL.
type AgentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository constructs a repository.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{pool: pool}
}

var _ domain.AgentRepository = (*AgentRepository)(nil)

// Create inserts a new agent record and fills in the generated id.
func (r *AgentRepository) Create(ctx context.Context, agent *domain.Agent) error {
	const query = `
INSERT INTO agents (agent_number, password_hash, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	err := r.pool.QueryRow(ctx, query,
		agent.AgentNumber,
		agent.PasswordHash,
		agent.IsActive,
		agent.CreatedAt,
		agent.UpdatedAt,
	).Scan(&agent.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAgentExists
		}
		return err
	}
	return nil
}

// GetByNumber fetches an agent by its agent number.
func (r *AgentRepository) GetByNumber(ctx context.Context, agentNumber string) (*domain.Agent, error) {
	const query = `
SELECT id, agent_number, password_hash, is_active, created_at, updated_at
FROM agents WHERE agent_number = $1
`
	row := r.pool.QueryRow(ctx, query, agentNumber)
	agent, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return agent, nil
}

// GetByID retrieves an agent by id.
func (r *AgentRepository) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	const query = `
SELECT id, agent_number, password_hash, is_active, created_at, updated_at
FROM agents WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	agent, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return agent, nil
}

// List returns all agents, newest first.
func (r *AgentRepository) List(ctx context.Context) ([]*domain.Agent, error) {
	const query = `
SELECT id, agent_number, password_hash, is_active, created_at, updated_at
FROM agents ORDER BY id DESC
`
	return r.queryAgents(ctx, query)
}

// UpdateStatus toggles the active flag of an agent.
func (r *AgentRepository) UpdateStatus(ctx context.Context, id int64, isActive bool) error {
	const query = `
UPDATE agents SET is_active = $2, updated_at = now() WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query, id, isActive)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

// Delete removes an agent by id.
func (r *AgentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM agents WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

// Search returns agents whose agent number matches the term.
func (r *AgentRepository) Search(ctx context.Context, term string) ([]*domain.Agent, error) {
	const query = `
SELECT id, agent_number, password_hash, is_active, created_at, updated_at
FROM agents WHERE agent_number ILIKE $1 ORDER BY id DESC
`
	return r.queryAgents(ctx, query, likePattern(term))
}

func (r *AgentRepository) queryAgents(ctx context.Context, query string, args ...any) ([]*domain.Agent, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return agents, nil
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(
		&a.ID,
		&a.AgentNumber,
		&a.PasswordHash,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
