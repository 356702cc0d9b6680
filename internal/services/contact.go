package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rynhardt5/forest-and-flow/internal/logger"
	"github.com/Rynhardt5/forest-and-flow/internal/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrRelayNotConfigured means no relay form ID is set anywhere; submissions
// cannot be delivered until one is configured.
var ErrRelayNotConfigured = errors.New("contact relay is not configured")

// Relay forwards a validated submission to the third-party form service.
type Relay interface {
	Send(ctx context.Context, formID string, input models.ContactInput) error
}

// Notifier receives a copy of each accepted submission.
type Notifier interface {
	ContactCopy(input models.ContactInput) error
}

// FormState is the contact form lifecycle:
//
//	idle -> submitting -> submitted | error
//
// error -> submitting on retry; submitted -> idle via "send another", which
// over HTTP is simply a fresh GET of the form.
type FormState int

const (
	StateIdle FormState = iota
	StateSubmitting
	StateSubmitted
	StateError
)

func (s FormState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

const (
	msgNotConfigured = "Contact form is not configured. Please contact via email."
	msgRelayFailed   = "Something went wrong. Please try again or email directly."
)

// Submission is one pass of the contact form through the state machine.
// Transitions are guarded: an illegal transition returns an error instead of
// silently overwriting state, so "submitted" and "error" can never coexist.
type Submission struct {
	state       FormState
	Input       models.ContactInput
	FieldErrors map[string]string
	Message     string
}

func NewSubmission(input models.ContactInput) *Submission {
	return &Submission{state: StateIdle, Input: input}
}

func (s *Submission) State() FormState { return s.state }

// Begin moves idle (or error, on retry) to submitting.
func (s *Submission) Begin() error {
	if s.state != StateIdle && s.state != StateError {
		return fmt.Errorf("cannot begin submission from state %s", s.state)
	}
	s.state = StateSubmitting
	s.Message = ""
	return nil
}

// Accept moves submitting to submitted and clears the form fields.
func (s *Submission) Accept() error {
	if s.state != StateSubmitting {
		return fmt.Errorf("cannot accept submission from state %s", s.state)
	}
	s.state = StateSubmitted
	s.Input = models.ContactInput{}
	return nil
}

// Reject moves submitting to error, keeping the input for resubmission.
func (s *Submission) Reject(message string) error {
	if s.state != StateSubmitting {
		return fmt.Errorf("cannot reject submission from state %s", s.state)
	}
	s.state = StateError
	s.Message = message
	return nil
}

// ContactService validates contact form input and drives one submission
// through the relay. Validation failures never reach the network.
type ContactService struct {
	relay         Relay
	notifier      Notifier
	defaultFormID string
	validate      *validator.Validate
}

// NewContactService builds the service. notifier may be nil; defaultFormID is
// the environment-level relay token used when the content record carries none.
func NewContactService(relay Relay, notifier Notifier, defaultFormID string) *ContactService {
	return &ContactService{
		relay:         relay,
		notifier:      notifier,
		defaultFormID: defaultFormID,
		validate:      validator.New(),
	}
}

// Validate checks the input and returns per-field messages, keyed by the
// lower-case form field name. An empty map means the input is acceptable.
func (c *ContactService) Validate(input models.ContactInput) map[string]string {
	err := c.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": msgRelayFailed}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			fields["name"] = "Name must be at least 2 characters"
		case "Email":
			fields["email"] = "Please enter a valid email address"
		case "Message":
			fields["message"] = "Message must be at least 10 characters"
		}
	}
	return fields
}

// Submit runs one full submission: validate, then relay. formID is the relay
// token from the contact page record; the configured default is used when it
// is empty. The returned Submission carries the final state for rendering.
func (c *ContactService) Submit(ctx context.Context, formID string, input models.ContactInput) *Submission {
	sub := NewSubmission(input)

	if fields := c.Validate(input); len(fields) > 0 {
		// Invalid input keeps the form idle; no relay call is made.
		sub.FieldErrors = fields
		logger.Log.Info("contact submission rejected by validation",
			zap.Int("field_errors", len(fields)),
		)
		return sub
	}

	if err := sub.Begin(); err != nil {
		logger.Log.Error("contact submission state error", zap.Error(err))
		sub.Message = msgRelayFailed
		return sub
	}

	id := formID
	if id == "" {
		id = c.defaultFormID
	}
	if id == "" {
		_ = sub.Reject(msgNotConfigured)
		logger.Log.Warn("contact submission with no relay configured")
		return sub
	}

	if err := c.relay.Send(ctx, id, input); err != nil {
		_ = sub.Reject(msgRelayFailed)
		logger.Log.Error("contact relay failed", zap.Error(err))
		return sub
	}

	if err := sub.Accept(); err != nil {
		logger.Log.Error("contact submission state error", zap.Error(err))
		sub.Message = msgRelayFailed
		return sub
	}
	logger.Log.Info("contact submission relayed")

	if c.notifier != nil {
		// A failed copy never fails the submission itself.
		if err := c.notifier.ContactCopy(input); err != nil {
			logger.Log.Warn("contact copy email failed", zap.Error(err))
		}
	}
	return sub
}
