package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Rynhardt5/forest-and-flow/internal/models"
	"github.com/Rynhardt5/forest-and-flow/internal/render"
	"github.com/Rynhardt5/forest-and-flow/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	settings *models.SiteSettings
	home     *models.HomePageContent
	services *models.ServicesPageContent
	contact  *models.ContactPageContent
	err      error
}

func (m *mockStore) SiteSettings(context.Context) (*models.SiteSettings, error) {
	return m.settings, m.err
}
func (m *mockStore) HomePage(context.Context) (*models.HomePageContent, error) {
	return m.home, m.err
}
func (m *mockStore) ServicesPage(context.Context) (*models.ServicesPageContent, error) {
	return m.services, m.err
}
func (m *mockStore) ContactPage(context.Context) (*models.ContactPageContent, error) {
	return m.contact, m.err
}

type mockRelay struct {
	calls int
	err   error
}

func (m *mockRelay) Send(context.Context, string, models.ContactInput) error {
	m.calls++
	return m.err
}

func newEngine(t *testing.T) *render.Engine {
	t.Helper()
	engine, err := render.NewEngine()
	require.NoError(t, err)
	return engine
}

func TestPageHandler_Home(t *testing.T) {
	pages := services.NewPageService(&mockStore{})
	h := NewPageHandler(pages, newEngine(t))

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Grounded like a tree, responsive like water.")
	assert.Contains(t, body, "The Five Core Pillars")
}

func TestPageHandler_HomeUsesRecord(t *testing.T) {
	pages := services.NewPageService(&mockStore{
		home: &models.HomePageContent{HeroTitle: "Published headline"},
	})
	h := NewPageHandler(pages, newEngine(t))

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Body.String(), "Published headline")
}

func TestPageHandler_Services(t *testing.T) {
	pages := services.NewPageService(&mockStore{})
	h := NewPageHandler(pages, newEngine(t))

	rec := httptest.NewRecorder()
	h.Services(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Counselling That Meets You Where You Are")
}

func TestPageHandler_FetchErrorIs500(t *testing.T) {
	pages := services.NewPageService(&mockStore{err: errors.New("query timeout")})
	h := NewPageHandler(pages, newEngine(t))

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func contactHandler(t *testing.T, store *mockStore, relay services.Relay) *ContactHandler {
	t.Helper()
	pages := services.NewPageService(store)
	contact := services.NewContactService(relay, nil, "env-form")
	return NewContactHandler(pages, contact, newEngine(t))
}

func TestContactHandler_Success(t *testing.T) {
	relay := &mockRelay{}
	h := contactHandler(t, &mockStore{}, relay)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm(url.Values{
		"name":    {"Jordan"},
		"email":   {"jordan@example.com"},
		"message": {"I would like to book a consultation."},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, relay.calls)
	body := rec.Body.String()
	assert.Contains(t, body, "Message Sent!")
	// Success clears the form entirely.
	assert.NotContains(t, body, "Jordan")
}

func TestContactHandler_ValidationErrors(t *testing.T) {
	relay := &mockRelay{}
	h := contactHandler(t, &mockStore{}, relay)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm(url.Values{
		"name":    {"Al"},
		"email":   {"not-an-email"},
		"message": {"short"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, relay.calls)
	body := rec.Body.String()
	assert.Contains(t, body, "Name must be at least 2 characters")
	assert.Contains(t, body, "Please enter a valid email address")
	assert.Contains(t, body, "Message must be at least 10 characters")
	// The visitor's input is echoed back into the form.
	assert.Contains(t, body, `value="Al"`)
	assert.Contains(t, body, `value="not-an-email"`)
}

func TestContactHandler_RelayFailure(t *testing.T) {
	relay := &mockRelay{err: errors.New("status 503")}
	h := contactHandler(t, &mockStore{}, relay)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm(url.Values{
		"name":    {"Jordan"},
		"email":   {"jordan@example.com"},
		"message": {"I would like to book a consultation."},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Something went wrong. Please try again or email directly.")
	assert.Contains(t, body, `value="Jordan"`)
	assert.NotContains(t, body, "Message Sent!")
}

func TestContactHandler_FetchErrorIs500(t *testing.T) {
	h := contactHandler(t, &mockStore{err: errors.New("query timeout")}, &mockRelay{})

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm(url.Values{
		"name":    {"Jordan"},
		"email":   {"jordan@example.com"},
		"message": {"I would like to book a consultation."},
	}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
