package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripguide/metrics"
	"tripguide/services"
)

// FailureMessage is the only thing a client learns about an internal error.
const FailureMessage = "Failed to process request. Please check server logs."

type TripPayload struct {
	Destination string `json:"destination" binding:"required"`
	NumDays     string `json:"numDays"`
	NumPeople   string `json:"numPeople"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ItineraryRequest wraps the form fields in a "payload" object.
type ItineraryRequest struct {
	Payload TripPayload `json:"payload"`
}

type ItineraryResponse struct {
	Itinerary string `json:"itinerary"`
}

type Handler struct {
	svc    *services.ItineraryService
	logger *zap.Logger
}

func New(svc *services.ItineraryService, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// ItineraryHandler answers POST /api/itinerary. An unknown destination is a
// 200 with an explanatory message; only lookup or model failures give a 500.
func (h *Handler) ItineraryHandler(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p := req.Payload
	destination := strings.TrimSpace(p.Destination)
	if destination == "" {
		metrics.ItineraryRequests.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: destination is required"})
		return
	}

	ans, err := h.svc.Answer(c.Request.Context(), services.Trip{
		Destination: destination,
		NumDays:     strings.TrimSpace(p.NumDays),
		NumPeople:   strings.TrimSpace(p.NumPeople),
		StartDate:   strings.TrimSpace(p.StartDate),
		EndDate:     strings.TrimSpace(p.EndDate),
	})
	if err != nil {
		h.logger.Error("Error processing itinerary request",
			zap.String("destination", destination),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err))
		c.String(http.StatusInternalServerError, FailureMessage)
		return
	}

	c.JSON(http.StatusOK, ItineraryResponse{Itinerary: ans.Text})
}
