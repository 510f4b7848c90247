package content

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jomei/notionapi"

	"portfolio-backend/internal/models"
)

// NotionSource reads the project catalog from a Notion database. The database
// is expected to carry Title, Slug, Description, Tags, Category, Year, and
// Hero properties; rows missing a slug are skipped.
type NotionSource struct {
	client     *notionapi.Client
	databaseID notionapi.DatabaseID
}

func NewNotionSource(apiKey, databaseID string) *NotionSource {
	return &NotionSource{
		client:     notionapi.NewClient(notionapi.Token(apiKey)),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

func (s *NotionSource) List(ctx context.Context, filter Filter) ([]models.Project, error) {
	req := &notionapi.DatabaseQueryRequest{
		PageSize: 100,
		Sorts: []notionapi.SortObject{
			{Property: "Year", Direction: notionapi.SortOrderDESC},
		},
	}
	if filter.Tag != "" {
		req.Filter = notionapi.PropertyFilter{
			Property:    "Tags",
			MultiSelect: &notionapi.MultiSelectFilterCondition{Contains: filter.Tag},
		}
	}

	resp, err := s.client.Database.Query(ctx, s.databaseID, req)
	if err != nil {
		return nil, fmt.Errorf("notion query failed: %w", err)
	}

	projects := make([]models.Project, 0, len(resp.Results))
	for _, page := range resp.Results {
		p := pageToProject(page)
		if p.Slug == "" {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *NotionSource) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	resp, err := s.client.Database.Query(ctx, s.databaseID, &notionapi.DatabaseQueryRequest{
		PageSize: 1,
		Filter: notionapi.PropertyFilter{
			Property: "Slug",
			RichText: &notionapi.TextFilterCondition{Equals: slug},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("notion query failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNotFound
	}

	page := resp.Results[0]
	project := pageToProject(page)

	// The Description property holds the card blurb; the page body holds the
	// long-form text. Use the body when the property is empty.
	if project.ShortDescription == "" {
		body, err := s.pageText(ctx, page.ID)
		if err == nil {
			project.ShortDescription = body
		}
	}
	return &project, nil
}

func (s *NotionSource) GetRelated(ctx context.Context, slug string, limit int) ([]models.Project, error) {
	target, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	all, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	type scored struct {
		project models.Project
		shared  int
	}
	var candidates []scored
	for _, p := range all {
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

// pageText flattens the page's paragraph blocks into one string.
func (s *NotionSource) pageText(ctx context.Context, pageID notionapi.ObjectID) (string, error) {
	resp, err := s.client.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{PageSize: 100})
	if err != nil {
		return "", fmt.Errorf("notion block fetch failed: %w", err)
	}

	var parts []string
	for _, block := range resp.Results {
		if para, ok := block.(*notionapi.ParagraphBlock); ok {
			if text := plainText(para.Paragraph.RichText); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func pageToProject(page notionapi.Page) models.Project {
	p := models.Project{}
	for name, prop := range page.Properties {
		switch v := prop.(type) {
		case *notionapi.TitleProperty:
			p.Title = plainText(v.Title)
		case *notionapi.RichTextProperty:
			switch name {
			case "Slug":
				p.Slug = plainText(v.RichText)
			case "Description":
				p.ShortDescription = plainText(v.RichText)
			}
		case *notionapi.MultiSelectProperty:
			for _, opt := range v.MultiSelect {
				p.Tags = append(p.Tags, opt.Name)
			}
		case *notionapi.SelectProperty:
			p.Category = v.Select.Name
		case *notionapi.NumberProperty:
			p.Year = int(v.Number)
		case *notionapi.URLProperty:
			if name == "Hero" {
				p.Images.Hero = v.URL
			}
		case *notionapi.FilesProperty:
			for _, f := range v.Files {
				if f.File != nil {
					p.Images.Gallery = append(p.Images.Gallery, f.File.URL)
				}
			}
		}
	}
	sort.Strings(p.Tags)
	return p
}

func plainText(rich []notionapi.RichText) string {
	var b strings.Builder
	for _, r := range rich {
		b.WriteString(r.PlainText)
	}
	return b.String()
}
