package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Researcher is a person who can lead research projects.
// This layer only reads researchers; they are maintained elsewhere.
type Researcher struct {
	ResearcherID int
	FullName     string
}

// ResearchProject is a tracked research project.
// ProjectID is assigned by the caller, not generated by the store.
type ResearchProject struct {
	ProjectID        int
	ProjectTitle     string
	ResearchField    string
	StartDate        time.Time
	EndDate          time.Time
	Budget           decimal.Decimal
	LeadResearcherID *int

	// LeadResearcher is populated only when RelLeadResearcher is included.
	LeadResearcher *Researcher
}

// Validate checks the rules callers enforce before handing a project to the
// repository. The repository itself never calls it.
func (p ResearchProject) Validate() error {
	var errs []FieldError

	if p.ProjectID <= 0 {
		errs = append(errs, FieldError{Field: "project_id", Message: "must be positive"})
	}
	if strings.TrimSpace(p.ProjectTitle) == "" {
		errs = append(errs, FieldError{Field: "project_title", Message: "required"})
	}
	if strings.TrimSpace(p.ResearchField) == "" {
		errs = append(errs, FieldError{Field: "research_field", Message: "required"})
	}
	if p.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "required"})
	}
	if p.EndDate.IsZero() {
		errs = append(errs, FieldError{Field: "end_date", Message: "required"})
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && !DateOf(p.EndDate).After(DateOf(p.StartDate)) {
		errs = append(errs, FieldError{Field: "end_date", Message: "must be after start date"})
	}
	if !p.Budget.IsPositive() {
		errs = append(errs, FieldError{Field: "budget", Message: "must be positive"})
	}
	if p.LeadResearcherID == nil {
		errs = append(errs, FieldError{Field: "lead_researcher_id", Message: "required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Normalize trims free-text fields and drops the time-of-day from both dates.
func (p *ResearchProject) Normalize() {
	p.ProjectTitle = strings.TrimSpace(p.ProjectTitle)
	p.ResearchField = strings.TrimSpace(p.ResearchField)
	p.StartDate = DateOf(p.StartDate)
	p.EndDate = DateOf(p.EndDate)
}

// DateOf truncates t to a calendar date at midnight UTC, which is how
// dates round-trip through a PostgreSQL date column.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
