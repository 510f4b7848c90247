package content

import (
	"context"
	"sort"

	"portfolio-backend/internal/models"
)

// catalog is the compiled-in project table, ordered newest first. Slugs here
// must match the keys the prompt composer knows about.
var catalog = []models.Project{
	{
		Slug:             "commercial-analytics-hub",
		Title:            "Commercial Analytics Hub",
		ShortDescription: "B2B retail analytics dashboard redesigned around the three questions category managers actually ask.",
		Tags:             []string{"product design", "data visualization", "react"},
		Category:         "analytics",
		Year:             2024,
		Images: models.ProjectImages{
			Hero:    "/images/work/analytics-hub/hero.webp",
			Gallery: []string{"/images/work/analytics-hub/filters.webp", "/images/work/analytics-hub/annotations.webp"},
		},
	},
	{
		Slug:             "supply-chain-suite",
		Title:            "Supply Chain Suite",
		ShortDescription: "Three planning tools for dispatchers, designed to be legible from two meters away.",
		Tags:             []string{"product design", "research", "internal tools"},
		Category:         "analytics",
		Year:             2023,
		Images: models.ProjectImages{
			Hero:    "/images/work/supply-chain/hero.webp",
			Gallery: []string{"/images/work/supply-chain/timeline.webp"},
		},
	},
	{
		Slug:             "design-system",
		Title:            "Design System",
		ShortDescription: "A sixty-component system with tokens shared between Figma and React, used by four teams.",
		Tags:             []string{"design systems", "figma", "react"},
		Category:         "design",
		Year:             2023,
		Images: models.ProjectImages{
			Hero: "/images/work/design-system/hero.webp",
		},
	},
	{
		Slug:             "huggies-website",
		Title:            "Huggies Website Redesign",
		ShortDescription: "Consumer site restructured around the child's age and stage instead of internal product codes.",
		Tags:             []string{"web design", "content design", "research"},
		Category:         "design",
		Year:             2022,
		Images: models.ProjectImages{
			Hero:    "/images/work/huggies/hero.webp",
			Gallery: []string{"/images/work/huggies/range.webp", "/images/work/huggies/articles.webp"},
		},
	},
	{
		Slug:             "real-estate-platform",
		Title:            "Real Estate Platform",
		ShortDescription: "Freelance end-to-end design and build of a regional agency's listings and valuation experience.",
		Tags:             []string{"web design", "freelance", "typescript"},
		Category:         "development",
		Year:             2021,
		Images: models.ProjectImages{
			Hero: "/images/work/real-estate/hero.webp",
		},
	},
}

// StaticSource serves the compiled catalog.
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) List(_ context.Context, filter Filter) ([]models.Project, error) {
	out := make([]models.Project, 0, len(catalog))
	for _, p := range catalog {
		if filter.Tag != "" && !hasTag(p, filter.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *StaticSource) GetBySlug(_ context.Context, slug string) (*models.Project, error) {
	for _, p := range catalog {
		if p.Slug == slug {
			project := p
			return &project, nil
		}
	}
	return nil, ErrNotFound
}

// GetRelated ranks the rest of the catalog by shared tags and returns the top
// matches. Projects with no tag in common are not related.
func (s *StaticSource) GetRelated(ctx context.Context, slug string, limit int) ([]models.Project, error) {
	target, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	type scored struct {
		project models.Project
		shared  int
	}
	var candidates []scored
	for _, p := range catalog {
		if p.Slug == slug {
			continue
		}
		if n := sharedTags(*target, p); n > 0 {
			candidates = append(candidates, scored{p, n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})

	out := make([]models.Project, 0, limit)
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.project)
	}
	return out, nil
}

func hasTag(p models.Project, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sharedTags(a, b models.Project) int {
	n := 0
	for _, t := range a.Tags {
		if hasTag(b, t) {
			n++
		}
	}
	return n
}
