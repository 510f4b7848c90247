// Package content provides the read-only project catalog behind the work
// pages and the assistant. The catalog can be served from the compiled-in
// table or from a Notion database; callers only see ProjectSource.
package content

import (
	"context"
	"errors"

	"portfolio-backend/internal/models"
)

// ErrNotFound is returned when no project matches the requested slug.
var ErrNotFound = errors.New("project not found")

// Filter narrows a List call. The zero value matches everything.
type Filter struct {
	Tag string
}

// ProjectSource is the read-only catalog interface.
type ProjectSource interface {
	List(ctx context.Context, filter Filter) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetRelated(ctx context.Context, slug string, limit int) ([]models.Project, error)
}

// NewSource selects the backing catalog at startup. When both the Notion
// credential and database id are configured the remote source is used, with
// per-call fallback to the compiled catalog; otherwise the compiled catalog
// serves directly.
func NewSource(notionAPIKey, notionDatabaseID string) ProjectSource {
	static := NewStaticSource()
	if notionAPIKey != "" && notionDatabaseID != "" {
		return withFallback(NewNotionSource(notionAPIKey, notionDatabaseID), static)
	}
	return static
}
