package test

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	AuthorizeFn    func(context.Context, string) (int64, error)
	LogoutFn       func(context.Context, string) error
}

// Authenticate returns user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "token", nil
}

// Authorize returns stored identifier for authenticated user.
func (s AuthFacadeStub) Authorize(ctx context.Context, token string) (int64, error) {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, token)
	}
	return 1, nil
}

// Logout delegates to provided function or succeeds.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// AdvertiserFacadeStub simulates advertiser account operations.
type AdvertiserFacadeStub struct {
	RegisterFn func(context.Context, usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error)
	ProfileFn  func(context.Context, int64) (*model.Advertiser, *model.User, error)
}

// RegisterAdvertiser returns a fresh account for successful registrations.
func (s AdvertiserFacadeStub) RegisterAdvertiser(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	user := &model.User{ID: 1, Username: input.Username, Email: input.Email}
	advertiser := &model.Advertiser{ID: 1, UserID: 1, Phone: input.Phone}
	return advertiser, user, "token", nil
}

// AdvertiserProfile returns the configured profile.
func (s AdvertiserFacadeStub) AdvertiserProfile(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	user := &model.User{ID: userID, Username: "advertiser"}
	advertiser := &model.Advertiser{ID: 1, UserID: userID, Phone: "1199999999"}
	return advertiser, user, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrderFn  func(context.Context, int64, int64) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	CreateFn func(context.Context, int64, usecase.CreateOrderInput) (*model.Order, error)
	UpdateFn func(context.Context, int64, int64, usecase.UpdateOrderInput) (*model.Order, error)
	DeleteFn func(context.Context, int64, int64) error
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusOpen}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusOpen}}, nil
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, input)
	}
	return &model.Order{
		ID:     1,
		Item:   model.Item{Name: input.Item.Name, Description: input.Item.Description},
		Status: model.OrderStatusOpen,
	}, nil
}

// UpdateOrder delegates to provided function or echoes the patch target.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, userID, patch)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusOpen}, nil
}

// DeleteOrder delegates to provided function or succeeds.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID, userID)
	}
	return nil
}

// CommerceFacadeStub aggregates facade dependencies for HTTP layer tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	AdvertiserFacadeStub
	OrderFacadeStub
}
