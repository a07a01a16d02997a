package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripguide/knowledge"
	"tripguide/metrics"
)

// Answer is the text relayed to the client.
type Answer struct {
	Text string
	// EntryID is empty when the destination was not found.
	EntryID string
}

// Grounded reports whether the answer came from the model.
func (a Answer) Grounded() bool { return a.EntryID != "" }

// ItineraryService looks the destination up and asks the model about it.
type ItineraryService struct {
	kb      *knowledge.Base
	gen     Generator
	timeout time.Duration
	logger  *zap.Logger
}

// NewItineraryService wires the knowledge base to gen. A zero timeout
// leaves the model call bounded only by ctx.
func NewItineraryService(kb *knowledge.Base, gen Generator, timeout time.Duration, logger *zap.Logger) *ItineraryService {
	return &ItineraryService{kb: kb, gen: gen, timeout: timeout, logger: logger}
}

// Answer returns the model's reply for trip, or the canned no-data message
// when the destination is unknown. Errors are only returned for failures
// building the prompt or calling the model.
func (s *ItineraryService) Answer(ctx context.Context, trip Trip) (Answer, error) {
	entry, err := s.kb.Find(trip.Destination)
	if errors.Is(err, knowledge.ErrNoMatch) {
		s.logger.Info("No knowledge base entry for destination",
			zap.String("destination", trip.Destination))
		metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeNoMatch).Inc()
		return Answer{Text: NoDataMessage(trip.Destination, s.kb.Names())}, nil
	}
	if err != nil {
		metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return Answer{}, fmt.Errorf("lookup %q: %w", trip.Destination, err)
	}

	prompt := BuildPrompt(entry, trip)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.AIRequestDuration.WithLabelValues(s.gen.Provider(), status).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return Answer{}, fmt.Errorf("generate answer for %s: %w", entry.ID, err)
	}

	s.logger.Info("Generated grounded answer",
		zap.String("entry_id", entry.ID),
		zap.String("provider", s.gen.Provider()),
		zap.Int("response_length", len(text)),
		zap.Duration("duration", time.Since(start)))
	metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeGrounded).Inc()

	return Answer{Text: text, EntryID: entry.ID}, nil
}

// Destinations lists the knowledge base names.
func (s *ItineraryService) Destinations() []string {
	return s.kb.Names()
}

// Generator returns the configured model client.
func (s *ItineraryService) Generator() Generator {
	return s.gen
}
