package repository

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
)

// UserRepository describes persistence operations for login identities.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
