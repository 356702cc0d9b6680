package services

import (
	"context"

	"github.com/Rynhardt5/forest-and-flow/internal/content"
	"github.com/Rynhardt5/forest-and-flow/internal/logger"
	"github.com/Rynhardt5/forest-and-flow/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ContentStore is the read-only view of the content source a page needs.
type ContentStore interface {
	SiteSettings(ctx context.Context) (*models.SiteSettings, error)
	HomePage(ctx context.Context) (*models.HomePageContent, error)
	ServicesPage(ctx context.Context) (*models.ServicesPageContent, error)
	ContactPage(ctx context.Context) (*models.ContactPageContent, error)
}

// PageService composes pages: it fetches the page record and the shared
// settings record concurrently, waits for both, and resolves the result
// against the default content table. Missing records fall back wholesale;
// fetch errors fail the render and surface as the generic error page.
type PageService struct {
	store ContentStore
}

func NewPageService(store ContentStore) *PageService {
	return &PageService{store: store}
}

func (s *PageService) Home(ctx context.Context) (*content.HomeView, error) {
	var (
		home     *models.HomePageContent
		settings *models.SiteSettings
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		home, err = s.store.HomePage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.store.SiteSettings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Error("home page fetch failed", zap.Error(err))
		return nil, err
	}

	logger.Log.Debug("home page composed",
		zap.Bool("record", home != nil),
		zap.Bool("settings", settings != nil),
	)
	v := content.ComposeHome(home, settings)
	return &v, nil
}

func (s *PageService) Services(ctx context.Context) (*content.ServicesView, error) {
	var (
		page     *models.ServicesPageContent
		settings *models.SiteSettings
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.store.ServicesPage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.store.SiteSettings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Error("services page fetch failed", zap.Error(err))
		return nil, err
	}

	logger.Log.Debug("services page composed",
		zap.Bool("record", page != nil),
		zap.Bool("settings", settings != nil),
	)
	v := content.ComposeServices(page, settings)
	return &v, nil
}

func (s *PageService) Contact(ctx context.Context) (*content.ContactView, error) {
	var (
		page     *models.ContactPageContent
		settings *models.SiteSettings
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.store.ContactPage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.store.SiteSettings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Error("contact page fetch failed", zap.Error(err))
		return nil, err
	}

	logger.Log.Debug("contact page composed",
		zap.Bool("record", page != nil),
		zap.Bool("settings", settings != nil),
	)
	v := content.ComposeContact(page, settings)
	return &v, nil
}
