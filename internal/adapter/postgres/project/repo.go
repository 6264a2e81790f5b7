// Package project implements the research project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/research-registry/internal/adapter/postgres"
	"github.com/heartmarshall/research-registry/internal/domain"
)

const tableName = "research_projects"

// Table maps domain.ResearchProject onto research_projects, with the lead
// researcher available as an eager relation.
var Table = postgres.Table[domain.ResearchProject, int]{
	Name: tableName,
	Key:  domain.FieldProjectID,
	Columns: []string{
		domain.FieldProjectID,
		domain.FieldProjectTitle,
		domain.FieldResearchField,
		domain.FieldStartDate,
		domain.FieldEndDate,
		domain.FieldBudget,
		domain.FieldLeadResearcherID,
	},
	KeyOf: func(p *domain.ResearchProject) int { return p.ProjectID },
	Values: func(p *domain.ResearchProject) []any {
		return []any{
			p.ProjectID, p.ProjectTitle, p.ResearchField,
			p.StartDate, p.EndDate, p.Budget, p.LeadResearcherID,
		}
	},
	Fields: func(p *domain.ResearchProject) []any {
		return []any{
			&p.ProjectID, &p.ProjectTitle, &p.ResearchField,
			&p.StartDate, &p.EndDate, &p.Budget, &p.LeadResearcherID,
		}
	},
	Relations: map[domain.Relation]postgres.Join[domain.ResearchProject]{
		domain.RelLeadResearcher: {
			Table:   "researchers",
			On:      "researchers.researcher_id = research_projects.lead_researcher_id",
			Columns: []string{domain.FieldResearcherID, domain.FieldFullName},
			Bind:    bindLeadResearcher,
		},
	},
	Sortable: []string{
		domain.FieldProjectID,
		domain.FieldProjectTitle,
		domain.FieldResearchField,
		domain.FieldStartDate,
		domain.FieldEndDate,
		domain.FieldBudget,
	},
}

// bindLeadResearcher scans the joined researcher columns, which are NULL
// when the project has no lead.
func bindLeadResearcher(p *domain.ResearchProject) ([]any, func()) {
	var (
		id   *int
		name *string
	)
	return []any{&id, &name}, func() {
		if id == nil {
			return
		}
		r := domain.Researcher{ResearcherID: *id}
		if name != nil {
			r.FullName = *name
		}
		p.LeadResearcher = &r
	}
}

// Repo provides research project persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Repository[domain.ResearchProject, int]
	pool *pgxpool.Pool
}

// New creates a project repository staging into session.
func New(pool *pgxpool.Pool, session *postgres.Session) *Repo {
	return &Repo{
		Repository: postgres.NewRepository(pool, session, Table),
		pool:       pool,
	}
}

// TextMatches matches projects whose title or research field contains
// text, case-insensitively. Wildcards in text match literally.
func TextMatches(text string) sq.Sqlizer {
	pattern := "%" + domain.EscapeLike(text) + "%"
	return sq.Or{
		sq.ILike{tableName + "." + domain.FieldProjectTitle: pattern},
		sq.ILike{tableName + "." + domain.FieldResearchField: pattern},
	}
}

// LedBy matches projects whose lead researcher is researcherID.
func LedBy(researcherID int) sq.Sqlizer {
	return sq.Eq{tableName + "." + domain.FieldLeadResearcherID: researcherID}
}

const nextIDSQL = `SELECT COALESCE(MAX(project_id), 0) + 1 FROM research_projects`

// NextID returns one more than the largest stored project_id, or 1 when
// the table is empty. Concurrent callers may receive the same value; the
// primary key rejects the second insert.
func (r *Repo) NextID(ctx context.Context) (int, error) {
	var id int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, nextIDSQL).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: next id: %w", tableName, err)
	}
	return id, nil
}
