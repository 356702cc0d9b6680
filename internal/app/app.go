package app

import (
	"github.com/Rynhardt5/forest-and-flow/internal/config"
	"github.com/Rynhardt5/forest-and-flow/internal/handlers"
	"github.com/Rynhardt5/forest-and-flow/internal/render"
	"github.com/Rynhardt5/forest-and-flow/internal/repository"
	"github.com/Rynhardt5/forest-and-flow/internal/routes"
	"github.com/Rynhardt5/forest-and-flow/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	contentRepo := repository.NewContentRepository(
		cfg.SanityProjectID,
		cfg.SanityDataset,
		cfg.SanityAPIVersion,
		cfg.SanityToken,
	)

	engine, err := render.NewEngine()
	if err != nil {
		return nil, err
	}

	pageService := services.NewPageService(contentRepo)

	var notifier services.Notifier
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.ContactInbox != "" {
		notifier = services.NewEmailService(cfg)
	}
	contactService := services.NewContactService(services.NewFormspreeClient(), notifier, cfg.FormspreeID)

	pageHandler := handlers.NewPageHandler(pageService, engine)
	contactHandler := handlers.NewContactHandler(pageService, contactService, engine)

	router := mux.NewRouter()
	routes.InitRoutes(router, pageHandler, contactHandler, "web/static")

	return router, nil
}
