package domain

import "time"

// User is a registered account. Drivers and passengers share one table; a
// user acts as a driver simply by reporting positions.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
