package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/domain/repository"
	pkgAuth "github.com/admart/backend/internal/pkg/auth"
	"github.com/admart/backend/internal/session"
)

// RegisterAdvertiserInput carries the registration payload.
type RegisterAdvertiserInput struct {
	Username string
	Password string
	Email    string
	Phone    string
}

// AuthUseCase handles advertiser registration, login and session management.
type AuthUseCase struct {
	users       repository.UserRepository
	advertisers repository.AdvertiserRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
	sessions    session.Store
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	advertisers repository.AdvertiserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	sessions session.Store,
) *AuthUseCase {
	return &AuthUseCase{users: users, advertisers: advertisers, hasher: hasher, tokens: strategy, sessions: sessions}
}

// RegisterAdvertiser creates the login identity and the advertiser row and
// logs the new account in by issuing a session token.
func (u *AuthUseCase) RegisterAdvertiser(ctx context.Context, input RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Phone = strings.TrimSpace(input.Phone)

	ve := domainErrors.NewValidationError()
	if input.Username == "" {
		ve.Add("user.username", "this field is required")
	}
	if input.Password == "" {
		ve.Add("user.password", "this field is required")
	}
	if input.Phone == "" {
		ve.Add("phone", "this field is required")
	}
	if !ve.Empty() {
		return nil, nil, "", ve
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, "", err
	}

	adv, usr, err := u.advertisers.Create(ctx, repository.NewAdvertiser{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			taken := domainErrors.NewValidationError()
			taken.Add("user.username", "a user with that username already exists")
			return nil, nil, "", taken
		}
		return nil, nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, nil, "", err
	}

	return adv, usr, token, nil
}

// Authenticate validates credentials and returns the user with a session
// token. Unknown usernames and wrong passwords are indistinguishable.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authorize verifies the token and its revocation state, returning the
// authenticated user id.
func (u *AuthUseCase) Authorize(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	sess, err := u.tokens.ParseToken(token)
	if err != nil {
		return 0, err
	}
	revoked, err := u.sessions.Revoked(ctx, sess.ID)
	if err != nil {
		return 0, err
	}
	if revoked {
		return 0, pkgAuth.ErrInvalidToken
	}
	return sess.UserID, nil
}

// Logout revokes the token's session until the token would expire on its own.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return pkgAuth.ErrInvalidToken
	}
	sess, err := u.tokens.ParseToken(token)
	if err != nil {
		return err
	}
	return u.sessions.Revoke(ctx, sess.ID, time.Until(sess.ExpiresAt))
}

// AdvertiserProfile returns the advertiser and its login identity.
func (u *AuthUseCase) AdvertiserProfile(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error) {
	adv, err := u.advertisers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return adv, usr, nil
}
