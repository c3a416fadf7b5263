package token

import (
	"errors"
	"time"

	domain "fieldcms/backend/internal/domain/auth"
	usecase "fieldcms/backend/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates HMAC-SHA256 signed session tokens. The
// secret and TTL are fixed at construction; the manager holds no mutable
// state and is safe for concurrent use.
type JWTManager struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewJWTManager constructs a manager with the provided secret and token TTL.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Ensure JWTManager implements the TokenManager interface.
var _ usecase.TokenManager = (*JWTManager)(nil)

// Claims is the payload carried inside a session token.
type Claims struct {
	AgentID int64 `json:"agent_id"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the agent. Expiry is fixed at issuance to
// iat + ttl and never extended.
func (m *JWTManager) Issue(agentID int64, agentNumber string) (string, error) {
	now := m.nowFunc().UTC()
	claims := Claims{
		AgentID: agentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   agentNumber,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies the token, returning its claims when valid.
// The signing method is pinned to HS256, so tokens declaring any other
// algorithm are rejected before their signature is considered. No leeway is
// applied to expiry: a token is expired from the exact instant of exp
// onwards. iat is deliberately not checked, so future-dated tokens are
// accepted; that mirrors the behavior the rest of the system depends on.
// Validation never touches storage.
func (m *JWTManager) Validate(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.nowFunc),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenMalformed
	}
	if claims.IssuedAt == nil || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.Claims{
		Subject:   claims.Subject,
		AgentID:   claims.AgentID,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	default:
		return domain.ErrTokenMalformed
	}
}
