package handlers

import (
	"bytes"
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/logger"
	"github.com/Rynhardt5/forest-and-flow/internal/models"
	"github.com/Rynhardt5/forest-and-flow/internal/services"

	"go.uber.org/zap"
)

// ContactHandler processes contact form posts and re-renders the contact page
// with the submission outcome: field errors keep the visitor's input, success
// clears the form and shows the configured confirmation.
type ContactHandler struct {
	pages   *services.PageService
	contact *services.ContactService
	engine  Renderer
}

func NewContactHandler(pages *services.PageService, contact *services.ContactService, engine Renderer) *ContactHandler {
	return &ContactHandler{pages: pages, contact: contact, engine: engine}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.Log.Warn("contact form parse failed", zap.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	input := models.ContactInput{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	view, err := h.pages.Contact(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	sub := h.contact.Submit(r.Context(), view.Form.RelayID, input)

	view.Form.Submitted = sub.State() == services.StateSubmitted
	view.Form.ErrorMessage = sub.Message
	view.Form.Input = sub.Input
	view.Form.FieldErrors = sub.FieldErrors

	status := http.StatusOK
	if len(sub.FieldErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}

	var buf bytes.Buffer
	if err := h.engine.Contact(&buf, view); err != nil {
		logger.Log.Error("contact render failed", zap.Error(err))
		serverError(w)
		return
	}
	writeHTML(w, status, buf.Bytes())
}
