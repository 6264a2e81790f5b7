// Package researcher implements the researcher repository using PostgreSQL.
package researcher

import (
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/research-registry/internal/adapter/postgres"
	"github.com/heartmarshall/research-registry/internal/domain"
)

// Table maps domain.Researcher onto the researchers table.
var Table = postgres.Table[domain.Researcher, int]{
	Name:    "researchers",
	Key:     domain.FieldResearcherID,
	Columns: []string{domain.FieldResearcherID, domain.FieldFullName},
	KeyOf:   func(r *domain.Researcher) int { return r.ResearcherID },
	Values: func(r *domain.Researcher) []any {
		return []any{r.ResearcherID, r.FullName}
	},
	Fields: func(r *domain.Researcher) []any {
		return []any{&r.ResearcherID, &r.FullName}
	},
	Sortable: []string{domain.FieldResearcherID, domain.FieldFullName},
}

// Repo provides researcher persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Repository[domain.Researcher, int]
}

// New creates a researcher repository staging into session.
func New(pool *pgxpool.Pool, session *postgres.Session) *Repo {
	return &Repo{Repository: postgres.NewRepository(pool, session, Table)}
}
