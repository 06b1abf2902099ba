package usecase

import (
	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
)

// ItemInput carries the item part of an order payload.
type ItemInput struct {
	Name        string
	Description string
}

// AddressInput carries the shipping address part of an order payload.
type AddressInput struct {
	State        string
	Address      string
	Neighborhood string
	Number       string
	Complement   string
	City         string
	CEP          string
}

// CreateOrderInput is the full payload for order creation.
type CreateOrderInput struct {
	Item            ItemInput
	ShippingAddress AddressInput
}

func (in CreateOrderInput) validate() error {
	ve := domainErrors.NewValidationError()
	if in.Item.Name == "" {
		ve.Add("item.name", "this field is required")
	}
	if in.Item.Description == "" {
		ve.Add("item.description", "this field is required")
	}
	if !model.ValidState(in.ShippingAddress.State) {
		ve.Add("shipping_address.state", "invalid state code")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

// ItemPatch holds payload-present item fields. Nil means absent.
type ItemPatch struct {
	Name        *string
	Description *string
}

// AddressPatch holds payload-present address fields. Nil means absent.
type AddressPatch struct {
	State        *string
	Address      *string
	Neighborhood *string
	Number       *string
	Complement   *string
	City         *string
	CEP          *string
}

// UpdateOrderInput is a merge-patch payload: absent fields leave the
// stored values untouched.
type UpdateOrderInput struct {
	Item            *ItemPatch
	ShippingAddress *AddressPatch
	Status          *string
}

// apply validates the patch and merges it into order.
func (in UpdateOrderInput) apply(order *model.Order) error {
	ve := domainErrors.NewValidationError()

	if in.Status != nil {
		if !model.ValidOrderStatus(*in.Status) {
			ve.Add("status", "invalid status value")
		} else {
			order.Status = model.OrderStatus(*in.Status)
		}
	}

	if in.Item != nil {
		if in.Item.Name != nil {
			if *in.Item.Name == "" {
				ve.Add("item.name", "this field may not be blank")
			} else {
				order.Item.Name = *in.Item.Name
			}
		}
		if in.Item.Description != nil {
			if *in.Item.Description == "" {
				ve.Add("item.description", "this field may not be blank")
			} else {
				order.Item.Description = *in.Item.Description
			}
		}
	}

	if in.ShippingAddress != nil {
		addr := &order.ShippingAddress
		if in.ShippingAddress.State != nil {
			if !model.ValidState(*in.ShippingAddress.State) {
				ve.Add("shipping_address.state", "invalid state code")
			} else {
				addr.State = *in.ShippingAddress.State
			}
		}
		if in.ShippingAddress.Address != nil {
			addr.Address = *in.ShippingAddress.Address
		}
		if in.ShippingAddress.Neighborhood != nil {
			addr.Neighborhood = *in.ShippingAddress.Neighborhood
		}
		if in.ShippingAddress.Number != nil {
			addr.Number = *in.ShippingAddress.Number
		}
		if in.ShippingAddress.Complement != nil {
			addr.Complement = *in.ShippingAddress.Complement
		}
		if in.ShippingAddress.City != nil {
			addr.City = *in.ShippingAddress.City
		}
		if in.ShippingAddress.CEP != nil {
			addr.CEP = *in.ShippingAddress.CEP
		}
	}

	if ve.Empty() {
		return nil
	}
	return ve
}
