package model

import "time"

// Role separates workshop staff from customers.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// User represents a registered account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Principal is the identity carried by an auth token.
type Principal struct {
	UserID int64
	Role   Role
}

// IsStaff reports whether principal may use staff endpoints.
func (p Principal) IsStaff() bool {
	return p.Role == RoleStaff
}
