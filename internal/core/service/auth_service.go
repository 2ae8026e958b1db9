package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/controlempleados/employee-records/internal/core/domain"
	"github.com/controlempleados/employee-records/internal/core/ports"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
)

// AuthService implements registration, authentication and the account
// activation lifecycle.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a new inactive account with a bcrypt-hashed password.
// The existence check is only a fast path; the store's unique username
// index is the authoritative duplicate guard.
func (s *AuthService) Register(ctx context.Context, username, password string, roleID int64) (*domain.Account, error) {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return nil, domain.ErrInvalidRegistration
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrInvalidRegistration
	}

	role, err := s.repo.FindRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.Name,
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("role_id", created.RoleID).Msg("account registered")
	return created, nil
}

// Authenticate verifies the credentials and returns a signed token. Unknown
// username, wrong password and inactive account all collapse into the same
// domain.ErrInvalidCredentials so the caller cannot enumerate usernames or
// probe activation state.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !account.Active {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Username, account.RoleName)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", account.Username).Msg("login succeeded")
	return token, nil
}

// Activate enables a registered account. Tokens are stateless, so
// activation only affects future logins.
func (s *AuthService) Activate(ctx context.Context, accountID int64) error {
	if err := s.repo.SetActive(ctx, accountID, true); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Msg("account activated")
	return nil
}

// Deactivate suspends an account. Tokens issued before deactivation remain
// valid until their natural expiry; there is no revocation list.
func (s *AuthService) Deactivate(ctx context.Context, accountID int64) error {
	if err := s.repo.SetActive(ctx, accountID, false); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Msg("account deactivated")
	return nil
}

func (s *AuthService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.ListRoles(ctx)
}
