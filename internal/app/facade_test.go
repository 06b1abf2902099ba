package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	pkgAuth "github.com/admart/backend/internal/pkg/auth"
	testhelpers "github.com/admart/backend/internal/test"
	"github.com/admart/backend/internal/usecase"
)

func newFacade() (*CommerceFacade, *testhelpers.AdvertiserRepositoryStub, *testhelpers.OrderRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	advertisers := testhelpers.NewAdvertiserRepositoryStub(users)
	strategy := testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (*pkgAuth.Session, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return nil, pkgAuth.ErrInvalidToken
			}
			return &pkgAuth.Session{ID: token, UserID: id, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	sessions := &testhelpers.SessionStoreStub{}
	authUC := usecase.NewAuthUseCase(users, advertisers, testhelpers.HasherStub{}, strategy, sessions)

	orders := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orders, advertisers, users)

	return NewCommerceFacade(authUC, orderUC), advertisers, orders
}

func TestCommerceFacadeAuthFlow(t *testing.T) {
	facade, advertisers, _ := newFacade()
	ctx := context.Background()

	adv, user, token, err := facade.RegisterAdvertiser(ctx, usecase.RegisterAdvertiserInput{
		Username: "ad-corp",
		Password: "secret",
		Email:    "ad@corp.io",
		Phone:    "11987654321",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if adv.UserID != user.ID {
		t.Fatalf("advertiser not bound to user: %+v", adv)
	}

	stored, err := advertisers.Users.GetByUsername(ctx, "ad-corp")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.ID != user.ID {
		t.Fatalf("unexpected stored user %+v", stored)
	}

	id, err := facade.Authorize(ctx, token)
	if err != nil {
		t.Fatalf("authorize returned error: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, id)
	}

	if _, _, err := facade.Authenticate(ctx, "ad-corp", "secret"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	if err := facade.Logout(ctx, token); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if _, err := facade.Authorize(ctx, token); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected revoked token to be rejected, got %v", err)
	}

	gotAdv, gotUser, err := facade.AdvertiserProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if gotAdv.ID != adv.ID || gotUser.ID != user.ID {
		t.Fatalf("unexpected profile %+v %+v", gotAdv, gotUser)
	}
}

func TestCommerceFacadeOrderFlow(t *testing.T) {
	facade, _, _ := newFacade()
	ctx := context.Background()

	_, user, _, err := facade.RegisterAdvertiser(ctx, usecase.RegisterAdvertiserInput{
		Username: "ad-corp",
		Password: "secret",
		Phone:    "11987654321",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	order, err := facade.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		Item:            usecase.ItemInput{Name: "banner", Description: "street banner"},
		ShippingAddress: usecase.AddressInput{State: "SP", City: "Sao Paulo"},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if order.Status != model.OrderStatusOpen {
		t.Fatalf("expected open order, got %q", order.Status)
	}

	got, err := facade.Order(ctx, order.ID, user.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if got.ID != order.ID {
		t.Fatalf("unexpected order %+v", got)
	}

	list, err := facade.Orders(ctx, user.ID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one order, got %d", len(list))
	}

	status := "finished"
	updated, err := facade.UpdateOrder(ctx, order.ID, user.ID, usecase.UpdateOrderInput{Status: &status})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != model.OrderStatusFinished {
		t.Fatalf("status not updated: %q", updated.Status)
	}

	if err := facade.DeleteOrder(ctx, order.ID, user.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.Order(ctx, order.ID, user.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected deleted order to be gone, got %v", err)
	}
}
