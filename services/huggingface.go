package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models"

// HuggingFaceClient calls the hosted inference API for text-generation models.
type HuggingFaceClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFaceClient(apiKey, model, baseURL string) (*HuggingFaceClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	if baseURL == "" {
		baseURL = huggingFaceBaseURL
	}

	return &HuggingFaceClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := hfRequest{
		Inputs: "[INST] " + prompt + " [/INST]",
		Parameters: hfParameters{
			MaxNewTokens:   800,
			Temperature:    0.6,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", fmt.Errorf("AI model %s is loading", c.model)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HuggingFace API error (%d): %s", resp.StatusCode, string(body))
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}

	if len(hfResp) == 0 || hfResp[0].GeneratedText == "" {
		return "", ErrEmptyResponse
	}

	return hfResp[0].GeneratedText, nil
}

func (c *HuggingFaceClient) Provider() string { return "huggingface" }

func (c *HuggingFaceClient) Model() string { return c.model }
