package auth

// Claims is the decoded payload of an accepted session token. It is attached
// to the request context by the auth middleware and discarded when the
// request completes; nothing persists it.
type Claims struct {
	Subject   string
	AgentID   int64
	IssuedAt  int64
	ExpiresAt int64
}
