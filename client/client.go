package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"tripguide/handlers"
)

const DefaultBaseURL = "http://localhost:3000"

// Client talks to a running TripGuide server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// RequestItinerary posts the trip and returns the raw itinerary text.
func (c *Client) RequestItinerary(ctx context.Context, trip handlers.TripPayload) (string, error) {
	body, err := json.Marshal(handlers.ItineraryRequest{Payload: trip})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/itinerary", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("API Error: %s", errorMessage(resp, respBody))
	}

	var out handlers.ItineraryResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", errors.Wrap(err, "failed to parse response")
	}
	return out.Itinerary, nil
}

// errorMessage prefers a JSON "error" field, then the raw body, then the
// status text.
func errorMessage(resp *http.Response, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text != "" {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return e.Error
		}
		return text
	}
	if st := http.StatusText(resp.StatusCode); st != "" {
		return st
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
