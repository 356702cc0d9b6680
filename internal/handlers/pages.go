package handlers

import (
	"bytes"
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/logger"
	"github.com/Rynhardt5/forest-and-flow/internal/services"

	"go.uber.org/zap"
)

// PageHandler serves the document pages. Content-fetch failures are not
// handled specially: the visitor gets the generic error response and the
// details go to the log.
type PageHandler struct {
	pages  *services.PageService
	engine Renderer
}

func NewPageHandler(pages *services.PageService, engine Renderer) *PageHandler {
	return &PageHandler{pages: pages, engine: engine}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.pages.Home(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	var buf bytes.Buffer
	if err := h.engine.Home(&buf, view); err != nil {
		logger.Log.Error("home render failed", zap.Error(err))
		serverError(w)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	view, err := h.pages.Services(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	var buf bytes.Buffer
	if err := h.engine.Services(&buf, view); err != nil {
		logger.Log.Error("services render failed", zap.Error(err))
		serverError(w)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	view, err := h.pages.Contact(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	var buf bytes.Buffer
	if err := h.engine.Contact(&buf, view); err != nil {
		logger.Log.Error("contact render failed", zap.Error(err))
		serverError(w)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func serverError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
