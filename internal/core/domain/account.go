package domain

import (
	"errors"
	"time"
)

// Staff roles.
const (
	RoleAdministrator = "administrator"
	RoleManager       = "manager"
	RoleHousekeeper   = "housekeeper"
)

// DefaultPassword is the placeholder password assigned at provisioning time.
// An account that still authenticates with it must change it before working.
const DefaultPassword = "default"

var ErrInvalidCredentials = errors.New("invalid login or password")
var ErrAccountBlocked = errors.New("account is blocked")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrWrongPassword = errors.New("current password is incorrect")
var ErrPasswordMismatch = errors.New("password confirmation does not match")
var ErrEmptyPassword = errors.New("password cannot be empty")
var ErrInvalidRole = errors.New("invalid staff role")

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleManager, RoleHousekeeper:
		return true
	}
	return false
}

// Account models a staff member. Accounts are never deleted, only blocked
// and unblocked.
type Account struct {
	ID             string     `json:"id"`
	FullName       string     `json:"full_name"`
	Login          string     `json:"login"`
	Role           string     `json:"role"`
	PasswordHash   string     `json:"-"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	FailedAttempts int        `json:"-"`
	Blocked        bool       `json:"blocked"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
