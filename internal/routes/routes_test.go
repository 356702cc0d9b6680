package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rynhardt5/forest-and-flow/internal/handlers"
	"github.com/Rynhardt5/forest-and-flow/internal/models"
	"github.com/Rynhardt5/forest-and-flow/internal/render"
	"github.com/Rynhardt5/forest-and-flow/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyStore struct{}

func (emptyStore) SiteSettings(context.Context) (*models.SiteSettings, error)    { return nil, nil }
func (emptyStore) HomePage(context.Context) (*models.HomePageContent, error)     { return nil, nil }
func (emptyStore) ServicesPage(context.Context) (*models.ServicesPageContent, error) {
	return nil, nil
}
func (emptyStore) ContactPage(context.Context) (*models.ContactPageContent, error) { return nil, nil }

type noopRelay struct{}

func (noopRelay) Send(context.Context, string, models.ContactInput) error { return nil }

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	engine, err := render.NewEngine()
	require.NoError(t, err)

	pages := services.NewPageService(emptyStore{})
	contact := services.NewContactService(noopRelay{}, nil, "form123")

	router := mux.NewRouter()
	InitRoutes(router,
		handlers.NewPageHandler(pages, engine),
		handlers.NewContactHandler(pages, contact, engine),
		t.TempDir(),
	)
	return router
}

func TestRoutes(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/services", http.StatusOK},
		{http.MethodGet, "/contact", http.StatusOK},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.status, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_RequestIDHeader(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
