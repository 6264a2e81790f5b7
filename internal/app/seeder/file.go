// Package seeder loads a YAML seed file into the registry in a single
// transaction.
package seeder

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/research-registry/internal/domain"
)

const dateLayout = "2006-01-02"

// File is the on-disk seed format.
type File struct {
	Researchers []ResearcherRecord `yaml:"researchers"`
	Projects    []ProjectRecord    `yaml:"projects"`
	Accounts    []AccountRecord    `yaml:"accounts"`
}

type ResearcherRecord struct {
	ID       int    `yaml:"id"`
	FullName string `yaml:"full_name"`
}

type ProjectRecord struct {
	ID               int    `yaml:"id"`
	Title            string `yaml:"title"`
	Field            string `yaml:"field"`
	StartDate        string `yaml:"start_date"`
	EndDate          string `yaml:"end_date"`
	Budget           string `yaml:"budget"`
	LeadResearcherID *int   `yaml:"lead_researcher_id"`
}

// AccountRecord carries a plaintext password that is hashed before it
// is stored.
type AccountRecord struct {
	ID       int    `yaml:"id"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     int    `yaml:"role"`
}

// LoadFile reads and decodes the seed file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("seed file: decode: %w", err)
	}
	return &f, nil
}

// Project converts the record, failing on malformed dates or budget.
func (r ProjectRecord) Project() (domain.ResearchProject, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return domain.ResearchProject{}, fmt.Errorf("project %d: start_date: %w", r.ID, err)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(r.EndDate))
	if err != nil {
		return domain.ResearchProject{}, fmt.Errorf("project %d: end_date: %w", r.ID, err)
	}
	budget, err := decimal.NewFromString(strings.TrimSpace(r.Budget))
	if err != nil {
		return domain.ResearchProject{}, fmt.Errorf("project %d: budget: %w", r.ID, err)
	}

	p := domain.ResearchProject{
		ProjectID:        r.ID,
		ProjectTitle:     r.Title,
		ResearchField:    r.Field,
		StartDate:        start,
		EndDate:          end,
		Budget:           budget,
		LeadResearcherID: r.LeadResearcherID,
	}
	p.Normalize()
	return p, nil
}
