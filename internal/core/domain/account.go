package domain

import (
	"errors"
	"time"
)

// RoleName is the closed set of authorization tiers. Role checks compare
// against these constants, never against free-form strings.
type RoleName string

const (
	RoleAdmin RoleName = "Admin"
	RoleUser  RoleName = "User"
)

// Valid reports whether the name is one of the known roles.
func (r RoleName) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var ErrAccountExists = errors.New("account already exists")
var ErrInvalidRegistration = errors.New("invalid registration data")
var ErrAccountNotFound = errors.New("account not found")
var ErrRoleNotFound = errors.New("role not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// Role is a seeded reference row referenced, not owned, by accounts.
type Role struct {
	ID   int64    `json:"id" bson:"_id"`
	Name RoleName `json:"name" bson:"name"`
}

// Account is a credentialed identity, distinct from an Employee record.
// Accounts are created inactive and are never deleted, only deactivated.
type Account struct {
	ID           int64     `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	RoleID       int64     `json:"role_id" bson:"role_id"`
	RoleName     RoleName  `json:"role" bson:"-"`
	Active       bool      `json:"active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// TokenClaims is the verified identity carried by a bearer token. It is
// built once during validation and consumed as a value by the authorization
// gate; handlers never re-parse the raw token.
type TokenClaims struct {
	AccountID int64
	Username  string
	Role      RoleName
	IssuedAt  time.Time
	ExpiresAt time.Time
}
