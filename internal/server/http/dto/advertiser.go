package dto

// UserPayload carries the identity fields supplied at registration.
type UserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterAdvertiserRequest is the POST /advertiser/ payload.
type RegisterAdvertiserRequest struct {
	User  UserPayload `json:"user"`
	Phone string      `json:"phone"`
}

// AdvertiserResponse is the advertiser detail representation.
type AdvertiserResponse struct {
	User  UserResponse `json:"user"`
	Phone string       `json:"phone"`
}
