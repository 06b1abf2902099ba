package test

import (
	"context"
	"time"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Add registers a user under the next free identifier.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if user.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		user.ID = s.Next
		s.Next++
	}
	s.Users[user.Username] = user
	s.ByID[user.ID] = user
	return user
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AdvertiserRepositoryStub stores advertisers keyed by owning user.
type AdvertiserRepositoryStub struct {
	CreateFn func(context.Context, repository.NewAdvertiser) (*model.Advertiser, *model.User, error)

	Advertisers map[int64]*model.Advertiser
	Users       *UserRepositoryStub
	Next        int64
	Err         error
}

// NewAdvertiserRepositoryStub constructs stub backed by a user stub.
func NewAdvertiserRepositoryStub(users *UserRepositoryStub) *AdvertiserRepositoryStub {
	return &AdvertiserRepositoryStub{
		Advertisers: make(map[int64]*model.Advertiser),
		Users:       users,
		Next:        1,
	}
}

// Add registers an advertiser for the given user.
func (s *AdvertiserRepositoryStub) Add(advertiser *model.Advertiser) *model.Advertiser {
	if s.Advertisers == nil {
		s.Advertisers = make(map[int64]*model.Advertiser)
	}
	if advertiser.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		advertiser.ID = s.Next
		s.Next++
	}
	s.Advertisers[advertiser.UserID] = advertiser
	return advertiser
}

// Create registers user and advertiser rows unless the username is taken.
func (s *AdvertiserRepositoryStub) Create(ctx context.Context, reg repository.NewAdvertiser) (*model.Advertiser, *model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, reg)
	}
	if s.Err != nil {
		return nil, nil, s.Err
	}
	if s.Users == nil {
		s.Users = NewUserRepositoryStub()
	}
	if _, exists := s.Users.Users[reg.Username]; exists {
		return nil, nil, domainErrors.ErrAlreadyExists
	}
	user := s.Users.Add(&model.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
		CreatedAt:    time.Now(),
	})
	advertiser := s.Add(&model.Advertiser{UserID: user.ID, Phone: reg.Phone})
	return advertiser, user, nil
}

// GetByUserID fetches the advertiser owned by the given user.
func (s *AdvertiserRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Advertiser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if advertiser, ok := s.Advertisers[userID]; ok {
		return advertiser, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, int64, model.Item, model.Address) (*model.Order, error)
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	ListAllFn          func(context.Context) ([]model.Order, error)
	ListByAdvertiserFn func(context.Context, int64) ([]model.Order, error)
	UpdateFn           func(context.Context, *model.Order) error
	DeleteFn           func(context.Context, int64) error

	Orders  []model.Order
	Next    int64
	Updated []model.Order
	Deleted []int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, advertiserID int64, item model.Item, address model.Address) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, advertiserID, item, address)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := model.Order{
		ID:              s.Next,
		AdvertiserID:    advertiserID,
		Item:            item,
		ShippingAddress: address,
		Status:          model.OrderStatusOpen,
		CreatedAt:       time.Now(),
	}
	s.Next++
	s.Orders = append(s.Orders, order)
	result := order
	return &result, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// ListByAdvertiser returns orders owned by the given advertiser.
func (s *OrderRepositoryStub) ListByAdvertiser(ctx context.Context, advertiserID int64) ([]model.Order, error) {
	if s.ListByAdvertiserFn != nil {
		return s.ListByAdvertiserFn(ctx, advertiserID)
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.AdvertiserID == advertiserID {
			result = append(result, o)
		}
	}
	return result, nil
}

// Update records update invocations and rewrites the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, order)
	}
	for i, o := range s.Orders {
		if o.ID == order.ID {
			s.Orders[i] = *order
			s.Updated = append(s.Updated, *order)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes the stored order and records the invocation.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			s.Deleted = append(s.Deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.AdvertiserRepository = (*AdvertiserRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
