package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// Keys are caller-assigned, so every test binary hands out its own range.
var lastID atomic.Int64

func init() {
	lastID.Store(100_000)
}

// NextID returns a key no other seed in this test binary has used.
func NextID() int {
	return int(lastID.Add(1))
}

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedResearcher inserts a researcher with a unique name.
func SeedResearcher(t *testing.T, pool *pgxpool.Pool) domain.Researcher {
	t.Helper()

	r := domain.Researcher{
		ResearcherID: NextID(),
		FullName:     "Researcher " + uniqueSuffix(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO researchers (researcher_id, full_name) VALUES ($1, $2)`,
		r.ResearcherID, r.FullName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResearcher: %v", err)
	}
	return r
}

// NewProject returns a valid, unsaved project led by leadID. The title and
// field carry a unique suffix so text searches can target it.
func NewProject(leadID int) domain.ResearchProject {
	suffix := uniqueSuffix()
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return domain.ResearchProject{
		ProjectID:        NextID(),
		ProjectTitle:     "Project " + suffix,
		ResearchField:    "Field " + suffix,
		StartDate:        start,
		EndDate:          start.AddDate(1, 0, 0),
		Budget:           decimal.RequireFromString("50000.00"),
		LeadResearcherID: &leadID,
	}
}

// SeedProject inserts the project produced by NewProject after applying
// the given modifications.
func SeedProject(t *testing.T, pool *pgxpool.Pool, leadID int, mods ...func(p *domain.ResearchProject)) domain.ResearchProject {
	t.Helper()

	p := NewProject(leadID)
	for _, mod := range mods {
		mod(&p)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO research_projects
		    (project_id, project_title, research_field, start_date, end_date, budget, lead_researcher_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ProjectID, p.ProjectTitle, p.ResearchField, p.StartDate, p.EndDate, p.Budget, p.LeadResearcherID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedAccount inserts an account whose password hash matches password.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, password string, role domain.Role) domain.UserAccount {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount hash: %v", err)
	}

	suffix := uniqueSuffix()
	a := domain.UserAccount{
		AccountID:    NextID(),
		Email:        "user-" + suffix + "@example.com",
		FullName:     "User " + suffix,
		PasswordHash: string(hash),
		Role:         role,
	}
	_, err = pool.Exec(context.Background(),
		`INSERT INTO user_accounts (account_id, email, full_name, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.AccountID, a.Email, a.FullName, a.PasswordHash, int(a.Role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return a
}
