package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "fieldcms/backend/internal/domain/auth"
)

// Service coordinates authentication workflows between domain and
// infrastructure. It never stores or logs the plaintext password.
type Service struct {
	agents  domain.AgentRepository
	tokens  TokenManager
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(agents domain.AgentRepository, tokens TokenManager) *Service {
	return &Service{
		agents:  agents,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// Login validates credentials and returns a signed token plus the public
// identity summary. Unknown agent numbers, deactivated accounts and wrong
// passwords all yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, *domain.Info, error) {
	agentNumber := strings.TrimSpace(creds.AgentNumber)
	if agentNumber == "" || creds.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	agent, err := s.agents.GetByNumber(ctx, agentNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !agent.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !VerifyPassword(creds.Password, agent.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(agent.ID, agent.AgentNumber)
	if err != nil {
		return "", nil, err
	}

	info := agent.Info()
	return token, &info, nil
}

// Register creates a new agent account with a hashed password and returns
// its public summary.
func (s *Service) Register(ctx context.Context, agentNumber, password string, isActive *bool) (*domain.Info, error) {
	agentNumber = strings.TrimSpace(agentNumber)
	if agentNumber == "" {
		return nil, errors.New("agent number is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	active := true
	if isActive != nil {
		active = *isActive
	}

	now := s.nowFunc().UTC()
	agent := &domain.Agent{
		AgentNumber:  agentNumber,
		PasswordHash: hashed,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}

	info := agent.Info()
	return &info, nil
}
