package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Rynhardt5/forest-and-flow/internal/models"
)

// GROQ queries, one per singleton. Each enumerates exactly the fields the
// page renders; callers assume nothing beyond what is listed here.
const (
	siteSettingsQuery = `*[_type == "siteSettings"][0]{
  _id, siteName, siteTagline, seoTitle, seoDescription,
  navLinks[]{_key, label, href}, navButtonText, navButtonUrl,
  footerDescription, footerLinks[]{_key, label, href},
  footerContactTitle, footerContactText, copyrightText,
  bookingUrlFreeConsult, bookingUrlFullSession,
  email, phone, address, socialLinks[]{_key, platform, url}
}`

	homePageQuery = `*[_type == "homePage"][0]{
  _id,
  heroSubtitle, heroTitle, heroDescription, heroPrimaryButtonText, heroSecondaryButtonText,
  aboutLabel, aboutTitle, aboutContent, aboutImageCaption,
  pillarsLabel, pillarsTitle, pillarsDescription, pillars[]{_key, icon, title, description},
  servicesLabel, servicesTitle, servicesDescription, services[]{_key, icon, title, description},
  servicesClosing, servicesButtonText, servicesButtonUrl,
  approachLabel, approachTitle, approachDescription, approaches[]{_key, title, description},
  storyLabel, storyTitle, storyContent, storyQuote, storyQuoteAttribution, storyClosing,
  storyCards[]{_key, icon, title, content},
  ctaTitle, ctaDescription, ctaFeatures[]{_key, icon, text},
  ctaPrimaryTitle, ctaPrimaryDescription, ctaPrimaryButtonText,
  ctaSecondaryTitle, ctaSecondaryDescription, ctaSecondaryButtonText
}`

	servicesPageQuery = `*[_type == "servicesPage"][0]{
  _id, heroTitle, heroDescription,
  counsellingTypes[]{_key, icon, title, description, extended, highlight, content},
  areasOfSupportTitle, supportCategories[]{_key, title, items},
  pricingTitle, pricingDescription,
  consultTitle, consultDescription, consultButtonText, consultButtonUrl,
  sessionTitle, sessionPrice, sessionDescription, sessionButtonText, sessionButtonUrl,
  seoTitle, seoDescription
}`

	contactPageQuery = `*[_type == "contactPage"][0]{
  _id, heroTitle, heroDescription,
  formspreeId, formTitle, formDescription, submitButtonText, successMessage,
  contactInfoTitle, email, phone, responseTime,
  ctaTitle, ctaDescription, ctaButtonText, ctaButtonUrl,
  seoTitle, seoDescription
}`
)

// ContentRepository reads the page singletons from the hosted content source
// over its HTTP query API. A missing record is not an error: queries that
// yield null return (nil, nil) and the caller renders full fallback content.
// When no project is configured the repository short-circuits without any
// network traffic, so the site stays usable with an empty environment.
type ContentRepository struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	HTTPClient *http.Client

	// BaseURL overrides the derived query endpoint; used by tests.
	BaseURL string
}

func NewContentRepository(projectID, dataset, apiVersion, token string) *ContentRepository {
	return &ContentRepository{
		ProjectID:  projectID,
		Dataset:    dataset,
		APIVersion: apiVersion,
		Token:      token,
		HTTPClient: &http.Client{},
	}
}

func (r *ContentRepository) endpoint() string {
	if r.BaseURL != "" {
		return r.BaseURL
	}
	// The CDN host serves cached public reads; authorised reads go to the
	// live API host.
	host := "apicdn.sanity.io"
	if r.Token != "" {
		host = "api.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s/data/query/%s", r.ProjectID, host, r.APIVersion, r.Dataset)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// query runs one GROQ query and decodes the result envelope into out.
// Returns false without error when the query yields null.
func (r *ContentRepository) query(ctx context.Context, groq string, out any) (bool, error) {
	if r.ProjectID == "" && r.BaseURL == "" {
		return false, nil
	}

	u := r.endpoint() + "?" + url.Values{"query": {groq}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("content query: unexpected status %d", resp.StatusCode)
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("content query: decode: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return false, fmt.Errorf("content query: decode result: %w", err)
	}
	return true, nil
}

func (r *ContentRepository) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	found, err := r.query(ctx, siteSettingsQuery, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (r *ContentRepository) HomePage(ctx context.Context) (*models.HomePageContent, error) {
	var h models.HomePageContent
	found, err := r.query(ctx, homePageQuery, &h)
	if err != nil || !found {
		return nil, err
	}
	return &h, nil
}

func (r *ContentRepository) ServicesPage(ctx context.Context) (*models.ServicesPageContent, error) {
	var p models.ServicesPageContent
	found, err := r.query(ctx, servicesPageQuery, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (r *ContentRepository) ContactPage(ctx context.Context) (*models.ContactPageContent, error) {
	var p models.ContactPageContent
	found, err := r.query(ctx, contactPageQuery, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}
