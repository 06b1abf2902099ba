package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/server/http/dto"
	"github.com/admart/backend/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /order/.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(&o))
	}

	c.JSON(http.StatusOK, response)
}

// Detail handles GET /order/:id.
func (h *OrderHandler) Detail(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Create handles POST /order/.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ve := domainErrors.NewValidationError()
	if req.Item == nil {
		ve.Add("item", "this field is required")
	}
	if req.ShippingAddress == nil {
		ve.Add("shipping_address", "this field is required")
	}
	if !ve.Empty() {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), userID, usecase.CreateOrderInput{
		Item: usecase.ItemInput{
			Name:        req.Item.Name,
			Description: req.Item.Description,
		},
		ShippingAddress: usecase.AddressInput{
			State:        req.ShippingAddress.State,
			Address:      req.ShippingAddress.Address,
			Neighborhood: req.ShippingAddress.Neighborhood,
			Number:       req.ShippingAddress.Number,
			Complement:   req.ShippingAddress.Complement,
			City:         req.ShippingAddress.City,
			CEP:          req.ShippingAddress.CEP,
		},
	})
	if err != nil {
		orderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Update handles PUT /order/:id. A full representation is expected: item
// and shipping_address must be present with item fields filled in.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ve := domainErrors.NewValidationError()
	if req.Item == nil {
		ve.Add("item", "this field is required")
	} else {
		if req.Item.Name == nil {
			ve.Add("item.name", "this field is required")
		}
		if req.Item.Description == nil {
			ve.Add("item.description", "this field is required")
		}
	}
	if req.ShippingAddress == nil {
		ve.Add("shipping_address", "this field is required")
	}
	if !ve.Empty() {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}

	h.applyUpdate(c, req)
}

// Patch handles PATCH /order/:id. Absent fields keep their stored values.
func (h *OrderHandler) Patch(c *gin.Context) {
	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	h.applyUpdate(c, req)
}

func (h *OrderHandler) applyUpdate(c *gin.Context, req dto.OrderUpdateRequest) {
	userID := CurrentUserID(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), orderID, userID, toUpdateInput(req))
	if err != nil {
		orderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /order/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), orderID, userID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func orderError(c *gin.Context, err error) {
	if ve, ok := domainErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toUpdateInput(req dto.OrderUpdateRequest) usecase.UpdateOrderInput {
	input := usecase.UpdateOrderInput{Status: req.Status}
	if req.Item != nil {
		input.Item = &usecase.ItemPatch{
			Name:        req.Item.Name,
			Description: req.Item.Description,
		}
	}
	if req.ShippingAddress != nil {
		input.ShippingAddress = &usecase.AddressPatch{
			State:        req.ShippingAddress.State,
			Address:      req.ShippingAddress.Address,
			Neighborhood: req.ShippingAddress.Neighborhood,
			Number:       req.ShippingAddress.Number,
			Complement:   req.ShippingAddress.Complement,
			City:         req.ShippingAddress.City,
			CEP:          req.ShippingAddress.CEP,
		}
	}
	return input
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID: order.ID,
		Item: dto.ItemPayload{
			Name:        order.Item.Name,
			Description: order.Item.Description,
		},
		ShippingAddress: dto.AddressPayload{
			State:        order.ShippingAddress.State,
			Address:      order.ShippingAddress.Address,
			Neighborhood: order.ShippingAddress.Neighborhood,
			Number:       order.ShippingAddress.Number,
			Complement:   order.ShippingAddress.Complement,
			City:         order.ShippingAddress.City,
			CEP:          order.ShippingAddress.CEP,
		},
		Status: string(order.Status),
	}
}
