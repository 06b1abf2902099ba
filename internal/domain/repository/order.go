package repository

import (
	"context"

	"github.com/admart/backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Create, Update and Delete touch the order row together with its item and
// address rows inside a single transaction.
type OrderRepository interface {
	Create(ctx context.Context, advertiserID int64, item model.Item, address model.Address) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByAdvertiser(ctx context.Context, advertiserID int64) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
}
