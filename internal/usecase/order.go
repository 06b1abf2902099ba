package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/domain/repository"
)

// OrderUseCase encapsulates the order lifecycle with ownership scoping.
// Requester identity is resolved from the authenticated user id on every
// call; there is no ambient auth state.
type OrderUseCase struct {
	orders      repository.OrderRepository
	advertisers repository.AdvertiserRepository
	users       repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	advertisers repository.AdvertiserRepository,
	users repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, advertisers: advertisers, users: users}
}

// requester is the resolved identity behind a call. advertiser is nil when
// the user has no advertiser row (a superuser-only identity).
type requester struct {
	user       *model.User
	advertiser *model.Advertiser
}

func (r requester) owns(order *model.Order) bool {
	return r.advertiser != nil && order.AdvertiserID == r.advertiser.ID
}

func (u *OrderUseCase) resolveRequester(ctx context.Context, userID int64) (requester, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return requester{}, err
	}

	adv, err := u.advertisers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return requester{user: usr}, nil
		}
		return requester{}, err
	}
	return requester{user: usr, advertiser: adv}, nil
}

// Get returns the order when the requester is its owner or a superuser.
// Absence and lack of permission both report ErrNotFound so order ids of
// other advertisers cannot be probed.
func (u *OrderUseCase) Get(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	req, err := u.resolveRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.user.IsSuperuser {
		return order, nil
	}
	if !req.owns(order) {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// List returns every order for superusers, the requester's own orders
// otherwise. The result is never nil.
func (u *OrderUseCase) List(ctx context.Context, userID int64) ([]model.Order, error) {
	req, err := u.resolveRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.user.IsSuperuser {
		return u.orders.ListAll(ctx)
	}
	if req.advertiser == nil {
		return []model.Order{}, nil
	}
	return u.orders.ListByAdvertiser(ctx, req.advertiser.ID)
}

// Create allocates a fresh item and address from the payload and persists
// the order bound to the requester's advertiser. Status is always open.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, input CreateOrderInput) (*model.Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	req, err := u.resolveRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.advertiser == nil {
		return nil, domainErrors.ErrNotFound
	}

	item := model.Item{
		Name:        input.Item.Name,
		Description: input.Item.Description,
	}
	address := model.Address{
		State:        input.ShippingAddress.State,
		Address:      input.ShippingAddress.Address,
		Neighborhood: input.ShippingAddress.Neighborhood,
		Number:       input.ShippingAddress.Number,
		Complement:   input.ShippingAddress.Complement,
		City:         input.ShippingAddress.City,
		CEP:          input.ShippingAddress.CEP,
	}

	return u.orders.Create(ctx, req.advertiser.ID, item, address)
}

// Update applies merge-patch semantics: only payload-present fields
// overwrite stored values. Ownership is re-resolved through Get so the
// permission check is shared.
func (u *OrderUseCase) Update(ctx context.Context, orderID, userID int64, patch UpdateOrderInput) (*model.Order, error) {
	order, err := u.Get(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	if err := patch.apply(order); err != nil {
		return nil, err
	}

	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order together with its item and address.
func (u *OrderUseCase) Delete(ctx context.Context, orderID, userID int64) error {
	order, err := u.Get(ctx, orderID, userID)
	if err != nil {
		return err
	}
	return u.orders.Delete(ctx, order.ID)
}
