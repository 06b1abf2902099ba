package auth

import "time"

// Session identifies an authenticated login carried inside a token.
// ID is random per issued token so a logout can revoke exactly one login.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (*Session, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
