package model

import "time"

// Advertiser is the account role that places and owns orders.
// Linked one-to-one with a User identity.
type Advertiser struct {
	ID         int64
	UserID     int64
	Phone      string
	CreatedAt  time.Time
	LastChange time.Time
}
