package repository

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
)

// NewAdvertiser bundles the fields persisted when an advertiser registers.
// User and advertiser rows are written in one transaction.
type NewAdvertiser struct {
	Username     string
	Email        string
	PasswordHash string
	Phone        string
}

// AdvertiserRepository describes persistence operations for advertisers.
type AdvertiserRepository interface {
	Create(ctx context.Context, reg NewAdvertiser) (*model.Advertiser, *model.User, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Advertiser, error)
}
