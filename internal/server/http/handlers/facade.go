package handlers

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	Authorize(ctx context.Context, token string) (int64, error)
	Logout(ctx context.Context, token string) error
}

// AdvertiserFacade covers advertiser account operations.
type AdvertiserFacade interface {
	RegisterAdvertiser(ctx context.Context, reg usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error)
	AdvertiserProfile(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, orderID, userID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID, userID int64) error
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	AdvertiserFacade
	OrderFacade
}
