package dto

// ItemPayload carries item fields on create and in responses.
type ItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddressPayload carries shipping address fields on create and in responses.
type AddressPayload struct {
	State        string `json:"state"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	City         string `json:"city"`
	CEP          string `json:"cep"`
}

// OrderCreateRequest is the POST /order/ payload. A status value supplied
// here is ignored: new orders always start open.
type OrderCreateRequest struct {
	Item            *ItemPayload    `json:"item"`
	ShippingAddress *AddressPayload `json:"shipping_address"`
	Status          string          `json:"status"`
}

// ItemUpdatePayload distinguishes absent fields from empty ones.
type ItemUpdatePayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddressUpdatePayload distinguishes absent fields from empty ones.
type AddressUpdatePayload struct {
	State        *string `json:"state"`
	Address      *string `json:"address"`
	Neighborhood *string `json:"neighborhood"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	City         *string `json:"city"`
	CEP          *string `json:"cep"`
}

// OrderUpdateRequest is the PUT/PATCH /order/:id payload. PUT additionally
// requires item and shipping_address to be present.
type OrderUpdateRequest struct {
	Item            *ItemUpdatePayload    `json:"item"`
	ShippingAddress *AddressUpdatePayload `json:"shipping_address"`
	Status          *string               `json:"status"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID              int64          `json:"id"`
	Item            ItemPayload    `json:"item"`
	ShippingAddress AddressPayload `json:"shipping_address"`
	Status          string         `json:"status"`
}
