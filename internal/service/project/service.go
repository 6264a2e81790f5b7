// Package project is the research project facade used by the registry's
// front ends. It binds the generic repository to domain.ResearchProject and
// always eager-loads the lead researcher on include reads.
package project

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// projectRepo is the part of the project repository the service needs.
type projectRepo interface {
	GetAll(ctx context.Context) ([]domain.ResearchProject, error)
	GetAllInclude(ctx context.Context, rels ...domain.Relation) ([]domain.ResearchProject, error)
	GetAllIncludeOrderBy(ctx context.Context, order domain.Order, rels ...domain.Relation) ([]domain.ResearchProject, error)
	GetByID(ctx context.Context, id *int) (*domain.ResearchProject, error)
	GetByIDInclude(ctx context.Context, id int, rels ...domain.Relation) (*domain.ResearchProject, error)
	Search(ctx context.Context, pred sq.Sqlizer) ([]domain.ResearchProject, error)
	SearchInclude(ctx context.Context, pred sq.Sqlizer, rels ...domain.Relation) ([]domain.ResearchProject, error)
	SearchIncludeOrderBy(ctx context.Context, pred sq.Sqlizer, order domain.Order, rels ...domain.Relation) ([]domain.ResearchProject, error)
	Exists(ctx context.Context, id int) (bool, error)
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, p *domain.ResearchProject) (int64, error)
	Update(ctx context.Context, p *domain.ResearchProject) (int64, error)
	Remove(ctx context.Context, p *domain.ResearchProject) error
	PrepareCreate(p *domain.ResearchProject)
	PrepareUpdate(p *domain.ResearchProject)
	PrepareRemove(p *domain.ResearchProject)
	Save(ctx context.Context) (int64, error)
}

// researcherRepo is the read-only researcher lookup the service needs.
type researcherRepo interface {
	GetAllIncludeOrderBy(ctx context.Context, order domain.Order, rels ...domain.Relation) ([]domain.Researcher, error)
	GetByID(ctx context.Context, id *int) (*domain.Researcher, error)
}

// Service implements research project operations.
type Service struct {
	log         *slog.Logger
	projects    projectRepo
	researchers researcherRepo
}

// NewService creates a new project service.
func NewService(logger *slog.Logger, projects projectRepo, researchers researcherRepo) *Service {
	return &Service{
		log:         logger.With("service", "project"),
		projects:    projects,
		researchers: researchers,
	}
}

// includes is the fixed relation set of every include read.
var includes = []domain.Relation{domain.RelLeadResearcher}
