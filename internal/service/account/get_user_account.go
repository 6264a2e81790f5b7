package account

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	pgaccount "github.com/heartmarshall/research-registry/internal/adapter/postgres/account"
	"github.com/heartmarshall/research-registry/internal/domain"
)

// GetUserAccount returns the account registered under email whose
// password hash matches password. Blank credentials fail validation
// before any lookup. An unknown email and a wrong password both return
// domain.ErrUnauthorized so callers cannot tell them apart.
func (s *Service) GetUserAccount(ctx context.Context, email, password string) (*domain.UserAccount, error) {
	if err := (CredentialsInput{Email: email, Password: password}).Validate(); err != nil {
		return nil, err
	}

	acct, err := s.accounts.First(ctx, s.accounts.GetSet().Where(pgaccount.ByEmail(email)))
	if err != nil {
		return nil, fmt.Errorf("account.GetUserAccount: %w", err)
	}
	if acct == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return acct, nil
}
