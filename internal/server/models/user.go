package models

import "time"

// User is the persisted account record. PasswordHash is a 64-byte
// HMAC-SHA512 digest and PasswordSalt the 128-byte key it was computed with;
// every persisted user carries both.
type User struct {
	ID           int64
	UserName     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}
