package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials indicates a login failure. Unknown agent numbers,
	// deactivated accounts and wrong passwords all collapse into this one
	// error so callers cannot distinguish them.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAgentExists signals a duplicate agent number registration.
	ErrAgentExists = errors.New("agent number already exists")
	// ErrAgentNotFound indicates a missing agent.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrHashingFailure wraps faults in the password hashing primitive. This
	// is an infrastructure error, never surfaced as "invalid credentials".
	ErrHashingFailure = errors.New("password hashing failed")

	// ErrTokenMalformed means a token does not have the expected shape.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid means a token signature does not verify
	// against the configured secret.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired means a structurally valid token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Agent models an authenticated field agent account.
type Agent struct {
	ID           int64     `json:"id"`
	AgentNumber  string    `json:"agent_number"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Info is the public identity summary returned to callers on login; it never
// carries the password hash.
type Info struct {
	ID          int64  `json:"id"`
	AgentNumber string `json:"agent_number"`
	IsActive    bool   `json:"is_active"`
}

// Info derives the public summary of the agent.
func (a *Agent) Info() Info {
	return Info{
		ID:          a.ID,
		AgentNumber: a.AgentNumber,
		IsActive:    a.IsActive,
	}
}

// Credentials captures raw credential input for login.
type Credentials struct {
	AgentNumber string
	Password    string
}
