package routes

import (
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/handlers"
	"github.com/Rynhardt5/forest-and-flow/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	pageHandler *handlers.PageHandler,
	contactHandler *handlers.ContactHandler,
	staticDir string,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/", pageHandler.Home).Methods(http.MethodGet)
	router.HandleFunc("/services", pageHandler.Services).Methods(http.MethodGet)
	router.HandleFunc("/contact", pageHandler.Contact).Methods(http.MethodGet)
	router.HandleFunc("/contact", contactHandler.Submit).Methods(http.MethodPost)

	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))),
	)
}
