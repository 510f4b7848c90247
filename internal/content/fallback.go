package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/models"
)

// fallbackSource tries the primary source and serves the fallback when the
// primary fails, so a Notion outage degrades to the compiled catalog instead
// of an error page.
type fallbackSource struct {
	primary  ProjectSource
	fallback ProjectSource
}

func withFallback(primary, fallback ProjectSource) ProjectSource {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (s *fallbackSource) List(ctx context.Context, filter Filter) ([]models.Project, error) {
	projects, err := s.primary.List(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Msg("primary content source failed, serving static catalog")
		return s.fallback.List(ctx, filter)
	}
	return projects, nil
}

func (s *fallbackSource) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.primary.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("primary content source failed, serving static catalog")
		return s.fallback.GetBySlug(ctx, slug)
	}
	return project, nil
}

func (s *fallbackSource) GetRelated(ctx context.Context, slug string, limit int) ([]models.Project, error) {
	projects, err := s.primary.GetRelated(ctx, slug, limit)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("primary content source failed, serving static catalog")
		return s.fallback.GetRelated(ctx, slug, limit)
	}
	return projects, nil
}
