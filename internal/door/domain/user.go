package domain

import "time"

type User struct {
	Name               string // primary key, embedded in every share issued to the user
	Email              string
	PasswordHash       string // argon2 encoded
	IsActive           bool
	IsAdmin            bool
	ValidationCodeHash string // fingerprint of the pending email code, empty once validated
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Registration is the input for self-service sign up.
type Registration struct {
	UserName string
	Email    string
	Password string
}
