// Package account looks up and registers user accounts. Passwords are
// only ever stored and compared as bcrypt hashes.
package account

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/internal/domain"
)

// accountRepo is the part of the account repository the service needs.
type accountRepo interface {
	GetSet() sq.SelectBuilder
	First(ctx context.Context, b sq.SelectBuilder) (*domain.UserAccount, error)
	Create(ctx context.Context, a *domain.UserAccount) (int64, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	cfg      config.AuthConfig
}

// NewService creates a new account service.
func NewService(logger *slog.Logger, accounts accountRepo, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		cfg:      cfg,
	}
}
