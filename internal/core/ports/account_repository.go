package ports

import (
	"context"
	"time"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// AccountRepository defines persistence operations for staff accounts.
// Login-state transitions are committed as atomic single-document writes so
// concurrent authentication attempts cannot lose an update or clear a
// lockout committed by another attempt.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByLogin(ctx context.Context, login string) (*domain.Account, error)
	// RecordLoginFailure increments the failure counter server-side and, in
	// the same write, flips blocked (resetting the counter) once the counter
	// reaches maxAttempts. Returns whether this attempt blocked the account.
	// An already-blocked account is left untouched and reported as
	// domain.ErrAccountBlocked.
	RecordLoginFailure(ctx context.Context, login string, maxAttempts int) (bool, error)
	// RecordLoginSuccess resets the failure counter and stamps last_login.
	// It never clears a blocked flag committed by a concurrent attempt; that
	// case is reported as domain.ErrAccountBlocked with no mutation.
	RecordLoginSuccess(ctx context.Context, login string, at time.Time) error
	// Block sets the blocked flag without touching the failure counter.
	Block(ctx context.Context, login string) error
	UpdatePassword(ctx context.Context, login string, passwordHash string) error
	// Unblock clears the blocked flag and resets the failed-attempt counter.
	Unblock(ctx context.Context, login string) error
}
