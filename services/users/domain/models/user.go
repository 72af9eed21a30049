// Package models defines the user account document (partition key /userId).
// Email is stored lower-cased; uniqueness of email and phone is advisory
// only — the store does not enforce it.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TypeUser is the document type tag for users.
const TypeUser = "user"

// User roles.
const (
	RoleCustomer = "Customer"
	RoleCaterer  = "Caterer"
	RoleAdmin    = "Admin"
)

// User account statuses.
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// User is the user account document. Its id always equals its userId.
type User struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	UserID      string     `json:"userId"`
	Role        string     `json:"role"`
	CatererID   string     `json:"catererId,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// NewUserID returns a generated user id with the USR_ prefix.
func NewUserID() string {
	return "USR_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NormalizeEmail lower-cases an email for storage and lookup so matching is
// case-insensitive end to end.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
