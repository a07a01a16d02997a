package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tripguide/config"
)

var (
	// ErrMissingAPIKey is returned when a provider is built without a key.
	ErrMissingAPIKey = errors.New("AI provider API key not configured")
	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("empty response from AI")
)

// Generator sends a single prompt to a text model and returns its answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// NewGenerator builds the client for cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (Generator, error) {
	active := cfg.Active()
	logger.Info("Initializing AI client",
		zap.String("provider", cfg.Provider),
		zap.String("model", active.Model))

	switch cfg.Provider {
	case "gemini":
		client, err := NewGeminiClient(ctx, active.APIKey, active.Model, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	case "openai":
		client, err := NewOpenAIClient(active.APIKey, active.Model, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return client, nil
	case "huggingface":
		client, err := NewHuggingFaceClient(active.APIKey, active.Model, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create HuggingFace client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'gemini', 'openai' or 'huggingface'", cfg.Provider)
	}
}
