// Package account implements the user account repository using PostgreSQL.
package account

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/research-registry/internal/adapter/postgres"
	"github.com/heartmarshall/research-registry/internal/domain"
)

const tableName = "user_accounts"

// Table maps domain.UserAccount onto user_accounts. Emails are stored
// normalized and are unique.
var Table = postgres.Table[domain.UserAccount, int]{
	Name: tableName,
	Key:  domain.FieldAccountID,
	Columns: []string{
		domain.FieldAccountID,
		domain.FieldEmail,
		domain.FieldFullName,
		domain.FieldPasswordHash,
		domain.FieldRole,
	},
	KeyOf: func(a *domain.UserAccount) int { return a.AccountID },
	Values: func(a *domain.UserAccount) []any {
		return []any{a.AccountID, domain.NormalizeEmail(a.Email), a.FullName, a.PasswordHash, int(a.Role)}
	},
	Fields: func(a *domain.UserAccount) []any {
		return []any{&a.AccountID, &a.Email, &a.FullName, &a.PasswordHash, &a.Role}
	},
	Sortable: []string{domain.FieldAccountID, domain.FieldEmail, domain.FieldFullName, domain.FieldRole},
}

// Repo provides user account persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Repository[domain.UserAccount, int]
}

// New creates an account repository staging into session.
func New(pool *pgxpool.Pool, session *postgres.Session) *Repo {
	return &Repo{Repository: postgres.NewRepository(pool, session, Table)}
}

// ByEmail matches the account registered under email, compared after
// normalization.
func ByEmail(email string) sq.Sqlizer {
	return sq.Eq{tableName + "." + domain.FieldEmail: domain.NormalizeEmail(email)}
}

// WithRole matches accounts holding role.
func WithRole(role domain.Role) sq.Sqlizer {
	return sq.Eq{tableName + "." + domain.FieldRole: int(role)}
}
