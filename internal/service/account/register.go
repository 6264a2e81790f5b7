package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/internal/domain"
)

// Register creates an account with a bcrypt hash of the password at the
// configured cost. A taken email or id returns domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.UserAccount, error) {
	acct, err := NewAccount(input, s.cfg)
	if err != nil {
		return nil, err
	}

	if _, err := s.accounts.Create(ctx, &acct); err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.Int("account_id", acct.AccountID),
		slog.String("role", acct.Role.String()))

	return &acct, nil
}

// NewAccount validates input against cfg and returns the account to store,
// with the email normalized and the password replaced by its hash. Every
// path that creates accounts goes through it.
func NewAccount(input RegisterInput, cfg config.AuthConfig) (domain.UserAccount, error) {
	if err := input.Validate(cfg.MinPasswordLength); err != nil {
		return domain.UserAccount{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), cfg.PasswordHashCost)
	if err != nil {
		return domain.UserAccount{}, fmt.Errorf("account %d: hash password: %w", input.AccountID, err)
	}

	return domain.UserAccount{
		AccountID:    input.AccountID,
		Email:        domain.NormalizeEmail(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		Role:         input.Role,
	}, nil
}
