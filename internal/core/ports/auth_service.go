package ports

import (
	"context"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token   string
	Account *domain.Account
	// MustChangePassword is set when the account still uses the
	// provisioning default password.
	MustChangePassword bool
}

// RegisterStaffInput carries the data needed to provision a staff account.
// The account starts with the default password.
type RegisterStaffInput struct {
	FullName string
	Login    string
	Role     string
}

// AuthService implements the staff account policy.
type AuthService interface {
	Authenticate(ctx context.Context, login, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, login, current, newPassword, confirmation string) error
	Unblock(ctx context.Context, login string) error
	RegisterStaff(ctx context.Context, input RegisterStaffInput) (*domain.Account, error)
}
