package models

// ContactInput is a contact form submission as entered by the visitor.
// Subject is optional; everything else is validated before any relay call.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty"`
	Message string `json:"message" validate:"required,min=10"`
}
