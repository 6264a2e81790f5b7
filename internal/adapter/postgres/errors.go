package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/research-registry/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// mapError translates store failures into domain sentinels. The driver
// error stays in the chain so callers can still inspect the PgError.
// A foreign key violation is ErrNotFound when the written row points at a
// missing row and ErrConflict when other rows still point at it.
// Context cancellation is wrapped but never remapped.
func mapError(err error, table string, key any) error {
	if err == nil {
		return nil
	}

	subject := table
	if key != nil {
		subject = fmt.Sprintf("%s %v", table, key)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrAlreadyExists, err)
		case codeForeignKeyViolation:
			// The error names the referencing table. When that is another
			// table, the row being written is still referenced elsewhere.
			if pgErr.TableName != "" && pgErr.TableName != table {
				return fmt.Errorf("%s: referenced by %s: %w: %w", subject, pgErr.TableName, domain.ErrConflict, err)
			}
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrNotFound, err)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrValidation, err)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
