package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/research-registry/internal/domain"
	"github.com/heartmarshall/research-registry/internal/service/account"
)

const dateLayout = "2006-01-02"

// projectWriter is the part of the project service create and update use.
type projectWriter interface {
	GetByID(ctx context.Context, id *int) (*domain.ResearchProject, error)
	GetResearcher(ctx context.Context, id *int) (*domain.Researcher, error)
	NextProjectID(ctx context.Context) (int, error)
	ProjectExists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, p *domain.ResearchProject) (int64, error)
	Update(ctx context.Context, p *domain.ResearchProject) (int64, error)
}

type accountRegistrar interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.UserAccount, error)
}

type projectFlags struct {
	fs     *flag.FlagSet
	id     int
	title  string
	field  string
	start  string
	end    string
	budget string
	lead   int
}

func newProjectFlags(name string) *projectFlags {
	f := &projectFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(io.Discard)
	f.fs.IntVar(&f.id, "id", 0, "project id")
	f.fs.StringVar(&f.title, "title", "", "project title")
	f.fs.StringVar(&f.field, "field", "", "research field")
	f.fs.StringVar(&f.start, "start", "", "start date, YYYY-MM-DD")
	f.fs.StringVar(&f.end, "end", "", "end date, YYYY-MM-DD")
	f.fs.StringVar(&f.budget, "budget", "", "budget")
	f.fs.IntVar(&f.lead, "lead", 0, "lead researcher id")
	return f
}

// apply copies the flags given on the command line onto p. Flags that
// were not given leave p unchanged.
func (f *projectFlags) apply(p *domain.ResearchProject) error {
	var errs []domain.FieldError
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			p.ProjectTitle = f.title
		case "field":
			p.ResearchField = f.field
		case "start":
			t, err := time.Parse(dateLayout, f.start)
			if err != nil {
				errs = append(errs, domain.FieldError{Field: "start_date", Message: "want YYYY-MM-DD"})
				return
			}
			p.StartDate = t
		case "end":
			t, err := time.Parse(dateLayout, f.end)
			if err != nil {
				errs = append(errs, domain.FieldError{Field: "end_date", Message: "want YYYY-MM-DD"})
				return
			}
			p.EndDate = t
		case "budget":
			d, err := decimal.NewFromString(f.budget)
			if err != nil {
				errs = append(errs, domain.FieldError{Field: "budget", Message: "not a number"})
				return
			}
			p.Budget = d
		case "lead":
			lead := f.lead
			p.LeadResearcherID = &lead
		}
	})
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// writeProject builds a project from f and stores it. A create without
// --id takes the next free id; an update starts from the stored project,
// so only the given flags change.
func writeProject(ctx context.Context, w projectWriter, create bool, f *projectFlags) (*domain.ResearchProject, error) {
	var p domain.ResearchProject
	switch {
	case create && f.id == 0:
		id, err := w.NextProjectID(ctx)
		if err != nil {
			return nil, err
		}
		p.ProjectID = id
	case create:
		p.ProjectID = f.id
	default:
		if f.id <= 0 {
			return nil, errUsage
		}
		stored, err := w.GetByID(ctx, &f.id)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, fmt.Errorf("project %d: %w", f.id, domain.ErrNotFound)
		}
		p = *stored
	}

	if err := f.apply(&p); err != nil {
		return nil, err
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lead, err := w.GetResearcher(ctx, p.LeadResearcherID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.NewValidationError("lead_researcher_id", fmt.Sprintf("unknown researcher %d", *p.LeadResearcherID))
	}

	if create {
		taken, err := w.ProjectExists(ctx, p.ProjectID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("project %d: %w", p.ProjectID, domain.ErrAlreadyExists)
		}
		if _, err := w.Create(ctx, &p); err != nil {
			return nil, err
		}
	} else if _, err := w.Update(ctx, &p); err != nil {
		return nil, err
	}

	p.LeadResearcher = lead
	return &p, nil
}

// registerAccount parses the register flags and creates the account.
func registerAccount(ctx context.Context, r accountRegistrar, args []string) (*domain.UserAccount, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.Int("id", 0, "account id")
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name")
	password := fs.String("password", os.Getenv("REGISTRY_NEW_PASSWORD"), "initial password")
	role := fs.Int("role", int(domain.RoleReadOnly), "role, 1=admin 2=editor 3=read-only 4=no-access")
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	return r.Register(ctx, account.RegisterInput{
		AccountID: *id,
		Email:     *email,
		FullName:  *name,
		Password:  *password,
		Role:      domain.Role(*role),
	})
}
