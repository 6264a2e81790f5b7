package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// SignIn authenticates like GetUserAccount and then requires a role that
// may use the registry. No-access accounts get domain.ErrForbidden.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.UserAccount, error) {
	acct, err := s.GetUserAccount(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.WarnContext(ctx, "sign-in rejected")
		}
		return nil, err
	}

	if !acct.Role.IsValid() {
		return nil, fmt.Errorf("account %d: role %s: %w", acct.AccountID, acct.Role, domain.ErrValidation)
	}
	if !acct.Role.CanSignIn() {
		s.log.WarnContext(ctx, "sign-in denied by role",
			slog.Int("account_id", acct.AccountID),
			slog.String("role", acct.Role.String()))
		return nil, domain.ErrForbidden
	}

	s.log.InfoContext(ctx, "account signed in",
		slog.Int("account_id", acct.AccountID),
		slog.String("role", acct.Role.String()))

	return acct, nil
}
