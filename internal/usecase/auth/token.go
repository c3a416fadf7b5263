package auth

import domain "fieldcms/backend/internal/domain/auth"

// TokenManager abstracts session token issuance and verification.
type TokenManager interface {
	Issue(agentID int64, agentNumber string) (string, error)
	Validate(token string) (*domain.Claims, error)
}
