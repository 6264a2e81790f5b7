package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// Create inserts p immediately.
func (s *Service) Create(ctx context.Context, p *domain.ResearchProject) (int64, error) {
	n, err := s.projects.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.InfoContext(ctx, "project created", slog.Int("project_id", p.ProjectID))
	return n, nil
}

// Update overwrites the stored project with p. The last writer wins.
func (s *Service) Update(ctx context.Context, p *domain.ResearchProject) (int64, error) {
	n, err := s.projects.Update(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.InfoContext(ctx, "project updated", slog.Int("project_id", p.ProjectID))
	return n, nil
}

// Remove deletes p immediately.
func (s *Service) Remove(ctx context.Context, p *domain.ResearchProject) error {
	if err := s.projects.Remove(ctx, p); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "project removed", slog.Int("project_id", p.ProjectID))
	return nil
}

func (s *Service) PrepareCreate(p *domain.ResearchProject) { s.projects.PrepareCreate(p) }

func (s *Service) PrepareUpdate(p *domain.ResearchProject) { s.projects.PrepareUpdate(p) }

func (s *Service) PrepareRemove(p *domain.ResearchProject) { s.projects.PrepareRemove(p) }

// Save commits the staged operations in one transaction.
func (s *Service) Save(ctx context.Context) (int64, error) {
	n, err := s.projects.Save(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "staged project changes rolled back", slog.String("error", err.Error()))
		return 0, err
	}
	if n > 0 {
		s.log.InfoContext(ctx, "staged project changes saved", slog.Int64("rows", n))
	}
	return n, nil
}
