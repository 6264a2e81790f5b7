package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/internal/domain"
	"github.com/heartmarshall/research-registry/internal/service/account"
)

// Stager is one repository staging into the seeder's session.
type Stager[T any] interface {
	Exists(ctx context.Context, id int) (bool, error)
	PrepareCreate(e *T)
}

// Session commits or drops everything the stagers recorded.
type Session interface {
	Save(ctx context.Context) (int64, error)
	Discard()
}

// Result summarizes a run.
type Result struct {
	Researchers int
	Projects    int
	Accounts    int
	Skipped     int
	Rows        int64
}

// Seeder inserts the records of a File that are not stored yet. All
// repositories must stage into the same Session so the run is atomic.
type Seeder struct {
	log         *slog.Logger
	session     Session
	researchers Stager[domain.Researcher]
	projects    Stager[domain.ResearchProject]
	accounts    Stager[domain.UserAccount]
	auth        config.AuthConfig
	dryRun      bool
}

const defaultMinPasswordLength = 8

// Option configures a Seeder.
type Option func(*Seeder)

// WithDryRun validates and counts without writing.
func WithDryRun(dryRun bool) Option {
	return func(s *Seeder) { s.dryRun = dryRun }
}

// WithAuth sets the password rules and bcrypt cost applied to seeded
// accounts. They are the same rules account registration enforces.
func WithAuth(cfg config.AuthConfig) Option {
	return func(s *Seeder) { s.auth = cfg }
}

func New(
	log *slog.Logger,
	session Session,
	researchers Stager[domain.Researcher],
	projects Stager[domain.ResearchProject],
	accounts Stager[domain.UserAccount],
	opts ...Option,
) *Seeder {
	s := &Seeder{
		log:         log.With("component", "seeder"),
		session:     session,
		researchers: researchers,
		projects:    projects,
		accounts:    accounts,
		auth: config.AuthConfig{
			PasswordHashCost:  bcrypt.DefaultCost,
			MinPasswordLength: defaultMinPasswordLength,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates every record, stages the missing ones in dependency
// order and saves once. Nothing is written when any record is invalid.
func (s *Seeder) Run(ctx context.Context, f *File) (res Result, err error) {
	researchers := make([]domain.Researcher, 0, len(f.Researchers))
	for _, r := range f.Researchers {
		name := strings.TrimSpace(r.FullName)
		if r.ID <= 0 || name == "" {
			return res, fmt.Errorf("researcher %d: %w", r.ID, domain.NewValidationError("researcher", "id and full_name are required"))
		}
		researchers = append(researchers, domain.Researcher{ResearcherID: r.ID, FullName: name})
	}

	projects := make([]domain.ResearchProject, 0, len(f.Projects))
	for _, r := range f.Projects {
		p, err := r.Project()
		if err != nil {
			return res, err
		}
		if err := p.Validate(); err != nil {
			return res, fmt.Errorf("project %d: %w", r.ID, err)
		}
		projects = append(projects, p)
	}

	accounts := make([]domain.UserAccount, 0, len(f.Accounts))
	for _, r := range f.Accounts {
		a, err := s.account(r)
		if err != nil {
			return res, err
		}
		accounts = append(accounts, a)
	}

	defer func() {
		if s.dryRun || err != nil {
			s.session.Discard()
		}
	}()

	for i := range researchers {
		staged, err := stage(ctx, s.researchers, &researchers[i], researchers[i].ResearcherID)
		if err != nil {
			return res, fmt.Errorf("researcher %d: %w", researchers[i].ResearcherID, err)
		}
		res.count(staged, &res.Researchers)
	}
	for i := range projects {
		staged, err := stage(ctx, s.projects, &projects[i], projects[i].ProjectID)
		if err != nil {
			return res, fmt.Errorf("project %d: %w", projects[i].ProjectID, err)
		}
		res.count(staged, &res.Projects)
	}
	for i := range accounts {
		staged, err := stage(ctx, s.accounts, &accounts[i], accounts[i].AccountID)
		if err != nil {
			return res, fmt.Errorf("account %d: %w", accounts[i].AccountID, err)
		}
		res.count(staged, &res.Accounts)
	}

	if s.dryRun {
		s.log.InfoContext(ctx, "dry run, nothing written",
			slog.Int("researchers", res.Researchers),
			slog.Int("projects", res.Projects),
			slog.Int("accounts", res.Accounts),
			slog.Int("skipped", res.Skipped))
		return res, nil
	}

	rows, err := s.session.Save(ctx)
	if err != nil {
		return res, fmt.Errorf("save seed: %w", err)
	}
	res.Rows = rows

	s.log.InfoContext(ctx, "seed applied",
		slog.Int("researchers", res.Researchers),
		slog.Int("projects", res.Projects),
		slog.Int("accounts", res.Accounts),
		slog.Int("skipped", res.Skipped),
		slog.Int64("rows", rows))

	return res, nil
}

func (s *Seeder) account(r AccountRecord) (domain.UserAccount, error) {
	a, err := account.NewAccount(account.RegisterInput{
		AccountID: r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		Password:  r.Password,
		Role:      domain.Role(r.Role),
	}, s.auth)
	if err != nil {
		return domain.UserAccount{}, fmt.Errorf("account %d: %w", r.ID, err)
	}
	return a, nil
}

// stage queues e unless a row with id is already stored.
func stage[T any](ctx context.Context, st Stager[T], e *T, id int) (bool, error) {
	exists, err := st.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	st.PrepareCreate(e)
	return true, nil
}

func (r *Result) count(staged bool, n *int) {
	if staged {
		*n++
		return
	}
	r.Skipped++
}
