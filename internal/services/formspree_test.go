package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rynhardt5/forest-and-flow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormspreeClient_Send(t *testing.T) {
	var gotPath string
	var gotBody models.ContactInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &FormspreeClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
	input := validInput()
	err := client.Send(context.Background(), "form123", input)

	require.NoError(t, err)
	assert.Equal(t, "/f/form123", gotPath)
	assert.Equal(t, input, gotBody)
}

func TestFormspreeClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := &FormspreeClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
	err := client.Send(context.Background(), "form123", validInput())

	assert.ErrorContains(t, err, "status 422")
}

func TestFormspreeClient_EmptyFormID(t *testing.T) {
	client := NewFormspreeClient()
	err := client.Send(context.Background(), "", validInput())
	assert.ErrorIs(t, err, ErrRelayNotConfigured)
}
