package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

const (
	defaultMaxFailedAttempts = 3
	defaultInactivityLimit   = 30 * 24 * time.Hour
)

// AuthService implements the staff account policy: authentication with
// failed-attempt and inactivity lockout, password changes, unblocking, and
// staff provisioning.
type AuthService struct {
	repo              ports.AccountRepository
	jwtSecret         string
	tokenTTL          time.Duration
	maxFailedAttempts int
	inactivityLimit   time.Duration
	log               zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:              repo,
		jwtSecret:         jwtSecret,
		tokenTTL:          tokenTTL,
		maxFailedAttempts: defaultMaxFailedAttempts,
		inactivityLimit:   defaultInactivityLimit,
		log:               log,
	}
}

// WithPolicy overrides the lockout thresholds. Zero values keep the defaults.
func (s *AuthService) WithPolicy(maxFailedAttempts int, inactivityDays int) *AuthService {
	if maxFailedAttempts > 0 {
		s.maxFailedAttempts = maxFailedAttempts
	}
	if inactivityDays > 0 {
		s.inactivityLimit = time.Duration(inactivityDays) * 24 * time.Hour
	}
	return s
}

// Authenticate evaluates one login attempt. Unknown logins and wrong
// passwords produce the same error so the caller cannot enumerate accounts.
// Lockout transitions are committed even though the attempt fails; each call
// performs at most one state mutation.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.Blocked {
		return nil, domain.ErrAccountBlocked
	}

	// Inactivity lockout fires regardless of password correctness once the
	// account is reached. The administrator role is exempt.
	if account.Role != domain.RoleAdministrator && account.LastLogin != nil {
		if time.Since(*account.LastLogin) > s.inactivityLimit {
			if err := s.repo.Block(ctx, account.Login); err != nil {
				return nil, err
			}
			s.log.Warn().Str("login", account.Login).Msg("account blocked for inactivity")
			return nil, domain.ErrAccountBlocked
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		// The repository owns the counter arithmetic so concurrent attempts
		// each count; a racing attempt may have blocked the account already.
		blocked, err := s.repo.RecordLoginFailure(ctx, account.Login, s.maxFailedAttempts)
		if err != nil {
			if errors.Is(err, domain.ErrAccountBlocked) {
				return nil, domain.ErrAccountBlocked
			}
			return nil, err
		}
		if blocked {
			s.log.Warn().Str("login", account.Login).Msg("account blocked after repeated failed attempts")
			return nil, domain.ErrAccountBlocked
		}
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLoginSuccess(ctx, account.Login, now); err != nil {
		// A lockout committed between the read and this write wins.
		if errors.Is(err, domain.ErrAccountBlocked) {
			return nil, domain.ErrAccountBlocked
		}
		return nil, err
	}
	account.LastLogin = &now
	account.FailedAttempts = 0

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	mustChange := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(domain.DefaultPassword)) == nil
	s.log.Info().Str("login", account.Login).Str("role", account.Role).Msg("authenticated")

	return &ports.LoginResult{
		Token:              token,
		Account:            account,
		MustChangePassword: mustChange,
	}, nil
}

// ChangePassword replaces the account's password hash after validating the
// current password and the confirmation. There is no rate limiting here.
func (s *AuthService) ChangePassword(ctx context.Context, login, current, newPassword, confirmation string) error {
	account, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)) != nil {
		return domain.ErrWrongPassword
	}
	if newPassword != confirmation {
		return domain.ErrPasswordMismatch
	}
	if newPassword == "" {
		return domain.ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, account.Login, string(hash)); err != nil {
		return err
	}
	s.log.Info().Str("login", account.Login).Msg("password changed")
	return nil
}

// Unblock clears the blocked flag and resets the failed-attempt counter.
func (s *AuthService) Unblock(ctx context.Context, login string) error {
	if err := s.repo.Unblock(ctx, login); err != nil {
		return err
	}
	s.log.Info().Str("login", login).Msg("account unblocked")
	return nil
}

// RegisterStaff provisions a new staff account with the default password.
func (s *AuthService) RegisterStaff(ctx context.Context, input ports.RegisterStaffInput) (*domain.Account, error) {
	if input.Login == "" || input.FullName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(domain.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FullName:     input.FullName,
		Login:        input.Login,
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("login", created.Login).Str("role", created.Role).Msg("staff account provisioned")
	return created, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"login":     account.Login,
		"role":      account.Role,
		"full_name": account.FullName,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
