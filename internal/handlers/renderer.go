package handlers

import (
	"io"

	"github.com/Rynhardt5/forest-and-flow/internal/content"
)

// Renderer draws a resolved page view into a writer.
type Renderer interface {
	Home(w io.Writer, v *content.HomeView) error
	Services(w io.Writer, v *content.ServicesView) error
	Contact(w io.Writer, v *content.ContactView) error
}
