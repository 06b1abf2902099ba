package test

import (
	"context"
	"errors"
	"time"

	pkgAuth "github.com/admart/backend/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses predictable session tokens.
type StrategyStub struct {
	Token   string
	Session *pkgAuth.Session
	Err     error
	IssueFn func(int64) (string, error)
	ParseFn func(string) (*pkgAuth.Session, error)
}

// IssueToken returns the configured token or a static value.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Token != "" {
		return s.Token, nil
	}
	return "token", nil
}

// ParseToken returns the configured session or a default one for user 1.
func (s StrategyStub) ParseToken(token string) (*pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return &pkgAuth.Session{ID: "session", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// SessionStoreStub tracks revoked session ids in memory.
type SessionStoreStub struct {
	RevokeFn  func(context.Context, string, time.Duration) error
	RevokedFn func(context.Context, string) (bool, error)

	RevokedIDs map[string]bool
	Err        error
}

// Revoke records the session id as revoked.
func (s *SessionStoreStub) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if s.RevokeFn != nil {
		return s.RevokeFn(ctx, sessionID, ttl)
	}
	if s.Err != nil {
		return s.Err
	}
	if s.RevokedIDs == nil {
		s.RevokedIDs = make(map[string]bool)
	}
	s.RevokedIDs[sessionID] = true
	return nil
}

// Revoked reports whether the session id was revoked earlier.
func (s *SessionStoreStub) Revoked(ctx context.Context, sessionID string) (bool, error) {
	if s.RevokedFn != nil {
		return s.RevokedFn(ctx, sessionID)
	}
	if s.Err != nil {
		return false, s.Err
	}
	return s.RevokedIDs[sessionID], nil
}

// AuthorizerStub implements the middleware authorization contract.
type AuthorizerStub struct {
	ID          int64
	Err         error
	AuthorizeFn func(context.Context, string) (int64, error)
}

// Authorize either delegates to override or returns predefined result.
func (s AuthorizerStub) Authorize(ctx context.Context, token string) (int64, error) {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
