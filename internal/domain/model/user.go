package model

import "time"

// User is the login identity behind an advertiser account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
}
