package entity

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a storefront or back-office account. Passwords are stored as
// bcrypt hashes only.
type User struct {
	ID           string
	Name         string
	Mobile       string // login identifier, unique
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
