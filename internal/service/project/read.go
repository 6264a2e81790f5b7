package project

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	pgproject "github.com/heartmarshall/research-registry/internal/adapter/postgres/project"
	"github.com/heartmarshall/research-registry/internal/domain"
)

// GetAll returns every project without its lead researcher.
func (s *Service) GetAll(ctx context.Context) ([]domain.ResearchProject, error) {
	return s.projects.GetAll(ctx)
}

// GetAllInclude returns every project with its lead researcher.
func (s *Service) GetAllInclude(ctx context.Context) ([]domain.ResearchProject, error) {
	return s.projects.GetAllInclude(ctx, includes...)
}

// GetAllIncludeOrderBy returns every project with its lead researcher,
// sorted by order.
func (s *Service) GetAllIncludeOrderBy(ctx context.Context, order domain.Order) ([]domain.ResearchProject, error) {
	return s.projects.GetAllIncludeOrderBy(ctx, order, includes...)
}

// GetByID returns the project or nil. A nil id is answered without a query.
func (s *Service) GetByID(ctx context.Context, id *int) (*domain.ResearchProject, error) {
	return s.projects.GetByID(ctx, id)
}

// GetByIDInclude is GetByID with the lead researcher loaded.
func (s *Service) GetByIDInclude(ctx context.Context, id *int) (*domain.ResearchProject, error) {
	if id == nil {
		return nil, nil
	}
	return s.projects.GetByIDInclude(ctx, *id, includes...)
}

func (s *Service) Search(ctx context.Context, pred sq.Sqlizer) ([]domain.ResearchProject, error) {
	return s.projects.Search(ctx, pred)
}

func (s *Service) SearchInclude(ctx context.Context, pred sq.Sqlizer) ([]domain.ResearchProject, error) {
	return s.projects.SearchInclude(ctx, pred, includes...)
}

func (s *Service) SearchIncludeOrderBy(ctx context.Context, pred sq.Sqlizer, order domain.Order) ([]domain.ResearchProject, error) {
	return s.projects.SearchIncludeOrderBy(ctx, pred, order, includes...)
}

// SearchByText returns projects whose title or research field contains
// text, ignoring case, with lead researchers loaded and in project id
// order. Blank text lists every project.
func (s *Service) SearchByText(ctx context.Context, text string) ([]domain.ResearchProject, error) {
	text = domain.NormalizeSearch(text)
	order := domain.Asc(domain.FieldProjectID)

	if text == "" {
		return s.projects.GetAllIncludeOrderBy(ctx, order, includes...)
	}

	found, err := s.projects.SearchIncludeOrderBy(ctx, pgproject.TextMatches(text), order, includes...)
	if err != nil {
		return nil, fmt.Errorf("project.SearchByText: %w", err)
	}
	return found, nil
}

// ListResearchers returns every researcher sorted by name, for pickers.
func (s *Service) ListResearchers(ctx context.Context) ([]domain.Researcher, error) {
	return s.researchers.GetAllIncludeOrderBy(ctx, domain.Asc(domain.FieldFullName))
}

// GetResearcher returns the researcher or nil.
func (s *Service) GetResearcher(ctx context.Context, id *int) (*domain.Researcher, error) {
	return s.researchers.GetByID(ctx, id)
}

// NextProjectID suggests the id for a new project.
func (s *Service) NextProjectID(ctx context.Context) (int, error) {
	return s.projects.NextID(ctx)
}

// ProjectExists reports whether id is taken.
func (s *Service) ProjectExists(ctx context.Context, id int) (bool, error) {
	return s.projects.Exists(ctx, id)
}
