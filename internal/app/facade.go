package app

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/usecase"
)

// CommerceFacade aggregates the use cases behind a single surface consumed
// by the HTTP layer.
type CommerceFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

func NewCommerceFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *CommerceFacade {
	return &CommerceFacade{auth: auth, orders: orders}
}

func (f *CommerceFacade) RegisterAdvertiser(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
	return f.auth.RegisterAdvertiser(ctx, input)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *CommerceFacade) Authorize(ctx context.Context, token string) (int64, error) {
	return f.auth.Authorize(ctx, token)
}

func (f *CommerceFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *CommerceFacade) AdvertiserProfile(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error) {
	return f.auth.AdvertiserProfile(ctx, userID)
}

func (f *CommerceFacade) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, userID)
}

func (f *CommerceFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.List(ctx, userID)
}

func (f *CommerceFacade) CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, userID, input)
}

func (f *CommerceFacade) UpdateOrder(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error) {
	return f.orders.Update(ctx, orderID, userID, patch)
}

func (f *CommerceFacade) DeleteOrder(ctx context.Context, orderID, userID int64) error {
	return f.orders.Delete(ctx, orderID, userID)
}
