package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripguide/config"
	"tripguide/handlers"
	"tripguide/knowledge"
	"tripguide/services"
)

type stubGenerator struct {
	mock.Mock
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := s.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (s *stubGenerator) Provider() string { return "stub" }

func (s *stubGenerator) Model() string { return "stub-1" }

func setupRouter(t *testing.T, gen services.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kb, err := knowledge.Load("")
	require.NoError(t, err)

	svc := services.NewItineraryService(kb, gen, 0, zap.NewNop())
	return NewRouter(&config.Config{}, handlers.New(svc, zap.NewNop()), zap.NewNop())
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItineraryGrounded(t *testing.T) {
	gen := new(stubGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"id":"paris"`) && strings.Contains(p, "Plan a visit for 2 day(s)")
	})).Return("Day 1|Morning|Louvre\nDay 2|Evening|Seine cruise", nil).Once()

	r := setupRouter(t, gen)
	w := do(r, http.MethodPost, "/api/itinerary",
		`{"payload":{"destination":"Paris","numDays":"2","numPeople":"","startDate":"","endDate":""}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"itinerary":"Day 1|Morning|Louvre\nDay 2|Evening|Seine cruise"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	gen.AssertExpectations(t)
}

func TestItineraryUnknownDestination(t *testing.T) {
	gen := new(stubGenerator)
	r := setupRouter(t, gen)

	w := do(r, http.MethodPost, "/api/itinerary", `{"payload":{"destination":"Atlantis"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"itinerary":"Sorry, I do not have any information about \"Atlantis\" in my database. I only have data on Paris and Tokyo."}`,
		w.Body.String())
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestItineraryBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"payload":`},
		{"missing destination", `{"payload":{"numDays":"3"}}`},
		{"blank destination", `{"payload":{"destination":"   "}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, new(stubGenerator))
			w := do(r, http.MethodPost, "/api/itinerary", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"Invalid request`)
		})
	}
}

func TestItineraryModelFailureHidesDetails(t *testing.T) {
	gen := new(stubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("upstream rejected prompt mentioning Eiffel Tower")).Once()

	r := setupRouter(t, gen)
	w := do(r, http.MethodPost, "/api/itinerary", `{"payload":{"destination":"paris"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, handlers.FailureMessage, w.Body.String())
	assert.NotContains(t, w.Body.String(), "Eiffel")
}

func TestItineraryPDF(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))
	w := do(r, http.MethodPost, "/api/itinerary/pdf",
		`{"destination":"Paris","itinerary":"Day 1|Morning|Louvre"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tripguide-itinerary.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))
	w := do(r, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": "ok",
		"service": "TripGuide API",
		"provider": "stub",
		"model": "stub-1",
		"destinations": ["Paris", "Tokyo"]
	}`, w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))

	w := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="travelForm"`)

	w = do(r, http.MethodGet, "/script.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/itinerary")

	w = do(r, http.MethodGet, "/style.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotFound(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))

	w := do(r, http.MethodGet, "/nope.txt", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/script.js", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))
	do(r, http.MethodGet, "/api/health", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRecoveryReturnsFailureMessage(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := do(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, handlers.FailureMessage, w.Body.String())
}

func TestRequestIDPassthrough(t *testing.T) {
	r := setupRouter(t, new(stubGenerator))
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	kb, err := knowledge.Load("")
	require.NoError(t, err)
	svc := services.NewItineraryService(kb, new(stubGenerator), 0, zap.NewNop())
	r := NewRouter(&config.Config{FrontendOrigins: []string{"https://trips.example.com"}},
		handlers.New(svc, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/itinerary", nil)
	req.Header.Set("Origin", "https://trips.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://trips.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
