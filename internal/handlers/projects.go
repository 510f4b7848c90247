package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/models"
)

const relatedProjectCount = 3

type ProjectsHandler struct {
	source content.ProjectSource
}

func NewProjectsHandler(source content.ProjectSource) *ProjectsHandler {
	return &ProjectsHandler{source: source}
}

// List serves GET /api/projects with an optional ?tag= filter.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.source.List(r.Context(), content.Filter{Tag: r.URL.Query().Get("tag")})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load projects"})
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get serves GET /api/projects/{slug}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.source.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load project"})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Related serves GET /api/projects/{slug}/related.
func (h *ProjectsHandler) Related(w http.ResponseWriter, r *http.Request) {
	related, err := h.source.GetRelated(r.Context(), chi.URLParam(r, "slug"), relatedProjectCount)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load related projects"})
		return
	}
	writeJSON(w, http.StatusOK, related)
}
