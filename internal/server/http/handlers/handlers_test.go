package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/server/http/dto"
	"github.com/admart/backend/internal/server/http/middleware"
	testhelpers "github.com/admart/backend/internal/test"
	"github.com/admart/backend/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.AuthTokenContextKey, "token")
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentToken(c); got != "" {
		t.Fatalf("expected empty token when not set, got %q", got)
	}

	c.Set(middleware.AuthTokenContextKey, "session-token")
	if got := CurrentToken(c); got != "session-token" {
		t.Fatalf("unexpected token %q", got)
	}
}

func TestAdvertiserHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterAdvertiserRequest{
		User:  dto.UserPayload{Username: "ad-corp", Password: "secret", Email: "ad@corp.io"},
		Phone: "11987654321",
	})
	stub := testhelpers.AdvertiserFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
		if input.Username != "ad-corp" || input.Password != "secret" || input.Phone != "11987654321" {
			t.Fatalf("unexpected registration input: %+v", input)
		}
		user := &model.User{ID: 7, Username: input.Username, Email: input.Email}
		return &model.Advertiser{ID: 3, UserID: 7, Phone: input.Phone}, user, "session-token", nil
	}}

	resp := performRequest(t, http.MethodPost, "/advertiser/", "/advertiser/", NewAdvertiserHandler(stub).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "admart_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named admart_token")
	}

	var payload dto.AdvertiserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.User.ID != 7 || payload.User.Username != "ad-corp" || payload.Phone != "11987654321" {
		t.Fatalf("unexpected response payload: %+v", payload)
	}
}

func TestAdvertiserHandlerRegisterScenarioMatchesE2E(t *testing.T) {
	username := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	phone := testhelpers.RandomDigits(11)
	body, _ := json.Marshal(dto.RegisterAdvertiserRequest{
		User:  dto.UserPayload{Username: username, Password: password},
		Phone: phone,
	})
	stub := testhelpers.AdvertiserFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
		if input.Username != username || input.Password != password || input.Phone != phone {
			t.Fatalf("unexpected registration input: %+v", input)
		}
		user := &model.User{ID: 1, Username: input.Username}
		return &model.Advertiser{ID: 1, UserID: 1, Phone: input.Phone}, user, "session-token", nil
	}}

	resp := performRequest(t, http.MethodPost, "/advertiser/", "/advertiser/", NewAdvertiserHandler(stub).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
}

func TestAdvertiserHandlerRegisterValidation(t *testing.T) {
	ve := domainErrors.NewValidationError()
	ve.Add("user.username", "a user with that username already exists")
	stub := testhelpers.AdvertiserFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
		return nil, nil, "", ve
	}}
	body, _ := json.Marshal(dto.RegisterAdvertiserRequest{
		User:  dto.UserPayload{Username: "taken", Password: "secret"},
		Phone: "11987654321",
	})

	resp := performRequest(t, http.MethodPost, "/advertiser/", "/advertiser/", NewAdvertiserHandler(stub).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(resp.Body.Bytes(), &fields); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(fields["user.username"]) != 1 || fields["user.username"][0] != "a user with that username already exists" {
		t.Fatalf("unexpected error body: %v", fields)
	}
}

func TestAdvertiserHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AdvertiserFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed json",
			facade: testhelpers.AdvertiserFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "internal error",
			facade: testhelpers.AdvertiserFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterAdvertiserInput) (*model.Advertiser, *model.User, string, error) {
				return nil, nil, "", errors.New("boom")
			}},
			body:   []byte(`{"user":{"username":"u","password":"p"},"phone":"1"}`),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/advertiser/", "/advertiser/", NewAdvertiserHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdvertiserHandlerProfile(t *testing.T) {
	stub := testhelpers.AdvertiserFacadeStub{ProfileFn: func(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error) {
		if userID != 9 {
			t.Fatalf("unexpected user id %d", userID)
		}
		user := &model.User{ID: 9, Username: "owner", Email: "owner@shop.io"}
		return &model.Advertiser{ID: 2, UserID: 9, Phone: "11911112222"}, user, nil
	}}

	resp := performRequest(t, http.MethodGet, "/advertiser/", "/advertiser/", NewAdvertiserHandler(stub).Profile, asUser(9), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.AdvertiserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.User.Username != "owner" || payload.Phone != "11911112222" {
		t.Fatalf("unexpected response payload: %+v", payload)
	}
}

func TestAdvertiserHandlerProfileNotFound(t *testing.T) {
	stub := testhelpers.AdvertiserFacadeStub{ProfileFn: func(ctx context.Context, userID int64) (*model.Advertiser, *model.User, error) {
		return nil, nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/advertiser/", "/advertiser/", NewAdvertiserHandler(stub).Profile, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Username: "ad-corp", Password: "secret"})
	stub := testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
		if username != "ad-corp" || password != "secret" {
			t.Fatalf("unexpected credentials passed to facade: %q %q", username, password)
		}
		return &model.User{ID: 5, Username: username, Email: "ad@corp.io"}, "session-token", nil
	}}

	resp := performRequest(t, http.MethodPost, "/user-auth/", "/user-auth/", NewAuthHandler(stub).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	var payload dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.ID != 5 || payload.Username != "ad-corp" {
		t.Fatalf("unexpected response payload: %+v", payload)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed json",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
				return nil, "", domainErrors.ErrInvalidCredentials
			}},
			body:   []byte(`{"username":"u","password":"wrong"}`),
			status: http.StatusBadRequest,
		},
		{
			name: "internal error",
			facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
				return nil, "", errors.New("boom")
			}},
			body:   []byte(`{"username":"u","password":"p"}`),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/user-auth/", "/user-auth/", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLoginBadCredentialsBody(t *testing.T) {
	stub := testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}
	body := []byte(`{"username":"ghost","password":"wrong"}`)
	resp := performRequest(t, http.MethodPost, "/user-auth/", "/user-auth/", NewAuthHandler(stub).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var payload map[string][]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload["non_field_errors"]) != 1 || payload["non_field_errors"][0] != "Invalid Credentials" {
		t.Fatalf("unexpected error body: %v", payload)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	revoked := ""
	stub := testhelpers.AuthFacadeStub{LogoutFn: func(ctx context.Context, token string) error {
		revoked = token
		return nil
	}}

	resp := performRequest(t, http.MethodDelete, "/user-auth/", "/user-auth/", NewAuthHandler(stub).Logout, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if revoked != "token" {
		t.Fatalf("expected session token passed to facade, got %q", revoked)
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	for _, cookie := range result.Cookies() {
		if cookie.Name == "admart_token" && cookie.MaxAge >= 0 {
			t.Fatalf("expected auth cookie to be expired, got max-age %d", cookie.MaxAge)
		}
	}
}

func TestAuthHandlerLogoutFailure(t *testing.T) {
	stub := testhelpers.AuthFacadeStub{LogoutFn: func(ctx context.Context, token string) error {
		return errors.New("store down")
	}}
	resp := performRequest(t, http.MethodDelete, "/user-auth/", "/user-auth/", NewAuthHandler(stub).Logout, asUser(1), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{OrdersFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
		if userID != 3 {
			t.Fatalf("unexpected user id %d", userID)
		}
		return []model.Order{
			{ID: 1, Item: model.Item{Name: "banner"}, Status: model.OrderStatusOpen},
			{ID: 2, Item: model.Item{Name: "billboard"}, Status: model.OrderStatusFinished},
		}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/order/", "/order/", NewOrderHandler(stub).List, asUser(3), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload) != 2 || payload[0].Item.Name != "banner" || payload[1].Status != "finished" {
		t.Fatalf("unexpected response payload: %+v", payload)
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{OrdersFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
		return []model.Order{}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/order/", "/order/", NewOrderHandler(stub).List, asUser(3), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestOrderHandlerDetail(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, orderID, userID int64) (*model.Order, error) {
		if orderID != 12 || userID != 3 {
			t.Fatalf("unexpected identifiers %d %d", orderID, userID)
		}
		return &model.Order{
			ID:              12,
			Item:            model.Item{Name: "banner", Description: "street banner"},
			ShippingAddress: model.Address{State: "SP", City: "Sao Paulo"},
			Status:          model.OrderStatusOpen,
		}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/order/:id", "/order/12", NewOrderHandler(stub).Detail, asUser(3), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.ID != 12 || payload.ShippingAddress.State != "SP" || payload.Status != "open" {
		t.Fatalf("unexpected response payload: %+v", payload)
	}
}

func TestOrderHandlerDetailFailures(t *testing.T) {
	tests := []struct {
		name   string
		target string
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{
			name:   "non numeric id",
			target: "/order/abc",
			facade: testhelpers.OrderFacadeStub{},
			status: http.StatusNotFound,
		},
		{
			name:   "not owned",
			target: "/order/12",
			facade: testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, orderID, userID int64) (*model.Order, error) {
				return nil, domainErrors.ErrNotFound
			}},
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			target: "/order/12",
			facade: testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, orderID, userID int64) (*model.Order, error) {
				return nil, errors.New("boom")
			}},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/order/:id", tt.target, NewOrderHandler(tt.facade).Detail, asUser(3), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.OrderCreateRequest{
		Item: &dto.ItemPayload{Name: "banner", Description: "street banner"},
		ShippingAddress: &dto.AddressPayload{
			State: "SP", City: "Sao Paulo", Address: "Av. Paulista", Number: "1000", CEP: "01310-100",
		},
	})
	stub := testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*model.Order, error) {
		if input.Item.Name != "banner" || input.ShippingAddress.State != "SP" {
			t.Fatalf("unexpected create input: %+v", input)
		}
		return &model.Order{
			ID:              1,
			Item:            model.Item{Name: input.Item.Name, Description: input.Item.Description},
			ShippingAddress: model.Address{State: input.ShippingAddress.State, City: input.ShippingAddress.City},
			Status:          model.OrderStatusOpen,
		}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/order/", "/order/", NewOrderHandler(stub).Create, asUser(3), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "open" {
		t.Fatalf("expected new order to be open, got %q", payload.Status)
	}
}

func TestOrderHandlerCreateMissingParts(t *testing.T) {
	body := []byte(`{"item":{"name":"banner","description":"d"}}`)
	resp := performRequest(t, http.MethodPost, "/order/", "/order/", NewOrderHandler(testhelpers.OrderFacadeStub{}).Create, asUser(3), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(resp.Body.Bytes(), &fields); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(fields["shipping_address"]) != 1 || fields["shipping_address"][0] != "this field is required" {
		t.Fatalf("unexpected error body: %v", fields)
	}
}

func TestOrderHandlerCreateValidationPropagated(t *testing.T) {
	ve := domainErrors.NewValidationError()
	ve.Add("shipping_address.state", "invalid state code")
	stub := testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*model.Order, error) {
		return nil, ve
	}}
	body := []byte(`{"item":{"name":"b","description":"d"},"shipping_address":{"state":"XX"}}`)
	resp := performRequest(t, http.MethodPost, "/order/", "/order/", NewOrderHandler(stub).Create, asUser(3), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(resp.Body.Bytes(), &fields); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(fields["shipping_address.state"]) != 1 {
		t.Fatalf("unexpected error body: %v", fields)
	}
}

func TestOrderHandlerUpdate(t *testing.T) {
	name := "renamed"
	description := "updated description"
	state := "RJ"
	body, _ := json.Marshal(dto.OrderUpdateRequest{
		Item:            &dto.ItemUpdatePayload{Name: &name, Description: &description},
		ShippingAddress: &dto.AddressUpdatePayload{State: &state},
	})
	stub := testhelpers.OrderFacadeStub{UpdateFn: func(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error) {
		if orderID != 12 || patch.Item == nil || *patch.Item.Name != "renamed" {
			t.Fatalf("unexpected update input: %d %+v", orderID, patch)
		}
		return &model.Order{ID: 12, Item: model.Item{Name: "renamed"}, Status: model.OrderStatusOpen}, nil
	}}

	resp := performRequest(t, http.MethodPut, "/order/:id", "/order/12", NewOrderHandler(stub).Update, asUser(3), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateRequiresFullPayload(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing item",
			body:  `{"shipping_address":{"state":"SP"}}`,
			field: "item",
		},
		{
			name:  "missing shipping address",
			body:  `{"item":{"name":"b","description":"d"}}`,
			field: "shipping_address",
		},
		{
			name:  "missing item name",
			body:  `{"item":{"description":"d"},"shipping_address":{}}`,
			field: "item.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPut, "/order/:id", "/order/12", NewOrderHandler(testhelpers.OrderFacadeStub{}).Update, asUser(3), []byte(tt.body), jsonHeaders)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			var fields map[string][]string
			if err := json.Unmarshal(resp.Body.Bytes(), &fields); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(fields[tt.field]) != 1 || fields[tt.field][0] != "this field is required" {
				t.Fatalf("unexpected error body: %v", fields)
			}
		})
	}
}

func TestOrderHandlerPatch(t *testing.T) {
	status := "finished"
	body, _ := json.Marshal(dto.OrderUpdateRequest{Status: &status})
	stub := testhelpers.OrderFacadeStub{UpdateFn: func(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error) {
		if patch.Item != nil || patch.ShippingAddress != nil {
			t.Fatalf("expected only status in patch, got %+v", patch)
		}
		if patch.Status == nil || *patch.Status != "finished" {
			t.Fatalf("expected finished status in patch")
		}
		return &model.Order{ID: orderID, Status: model.OrderStatusFinished}, nil
	}}

	resp := performRequest(t, http.MethodPatch, "/order/:id", "/order/12", NewOrderHandler(stub).Patch, asUser(3), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "finished" {
		t.Fatalf("expected finished status, got %q", payload.Status)
	}
}

func TestOrderHandlerPatchNotOwned(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{UpdateFn: func(ctx context.Context, orderID, userID int64, patch usecase.UpdateOrderInput) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodPatch, "/order/:id", "/order/12", NewOrderHandler(stub).Patch, asUser(3), []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	deleted := int64(0)
	stub := testhelpers.OrderFacadeStub{DeleteFn: func(ctx context.Context, orderID, userID int64) error {
		deleted = orderID
		return nil
	}}

	resp := performRequest(t, http.MethodDelete, "/order/:id", "/order/12", NewOrderHandler(stub).Delete, asUser(3), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if deleted != 12 {
		t.Fatalf("expected order 12 deleted, got %d", deleted)
	}
}

func TestOrderHandlerDeleteFailures(t *testing.T) {
	tests := []struct {
		name   string
		target string
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{
			name:   "non numeric id",
			target: "/order/abc",
			facade: testhelpers.OrderFacadeStub{},
			status: http.StatusNotFound,
		},
		{
			name:   "not owned",
			target: "/order/12",
			facade: testhelpers.OrderFacadeStub{DeleteFn: func(ctx context.Context, orderID, userID int64) error {
				return domainErrors.ErrNotFound
			}},
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			target: "/order/12",
			facade: testhelpers.OrderFacadeStub{DeleteFn: func(ctx context.Context, orderID, userID int64) error {
				return errors.New("boom")
			}},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodDelete, "/order/:id", tt.target, NewOrderHandler(tt.facade).Delete, asUser(3), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}
