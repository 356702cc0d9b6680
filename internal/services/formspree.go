package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/models"
)

// FormspreeClient posts validated contact submissions to the Formspree relay.
// Any 2xx response counts as accepted; everything else, including transport
// failures, is a submission error the visitor can retry.
type FormspreeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewFormspreeClient() *FormspreeClient {
	return &FormspreeClient{
		BaseURL:    "https://formspree.io",
		HTTPClient: &http.Client{},
	}
}

func (c *FormspreeClient) Send(ctx context.Context, formID string, input models.ContactInput) error {
	if formID == "" {
		return ErrRelayNotConfigured
	}

	data, err := json.Marshal(input)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/f/%s", c.BaseURL, formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay rejected submission: status %d", resp.StatusCode)
	}
	return nil
}
