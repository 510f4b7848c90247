package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/models"
)

func projectsRouter() http.Handler {
	h := NewProjectsHandler(content.NewStaticSource())
	r := chi.NewRouter()
	r.Get("/api/projects", h.List)
	r.Get("/api/projects/{slug}", h.Get)
	r.Get("/api/projects/{slug}/related", h.Related)
	return r
}

func TestProjectsHandler_List(t *testing.T) {
	rr := httptest.NewRecorder()
	projectsRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var projects []models.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	assert.Len(t, projects, 5)
}

func TestProjectsHandler_ListByTag(t *testing.T) {
	rr := httptest.NewRecorder()
	projectsRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects?tag=freelance", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var projects []models.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "real-estate-platform", projects[0].Slug)
}

func TestProjectsHandler_Get(t *testing.T) {
	rr := httptest.NewRecorder()
	projectsRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/design-system", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var project models.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&project))
	assert.Equal(t, "Design System", project.Title)
}

func TestProjectsHandler_GetNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	projectsRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectsHandler_Related(t *testing.T) {
	rr := httptest.NewRecorder()
	projectsRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/huggies-website/related", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var related []models.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&related))
	assert.NotEmpty(t, related)
	for _, p := range related {
		assert.NotEqual(t, "huggies-website", p.Slug)
	}
}
