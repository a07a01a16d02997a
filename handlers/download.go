package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripguide/itinerary"
)

// RequestIDKey is the gin context key the request-id middleware sets.
const RequestIDKey = "request_id"

type PDFRequest struct {
	Destination string `json:"destination"`
	Itinerary   string `json:"itinerary"`
}

// PDFHandler renders an itinerary the client already received as a PDF
// table. Nothing is stored; the text comes back in the request body.
func (h *Handler) PDFHandler(c *gin.Context) {
	var req PDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rows := itinerary.ParseRows(req.Itinerary)
	pdfBytes, err := itinerary.RenderPDF(itinerary.Document{
		Destination: strings.TrimSpace(req.Destination),
		Rows:        rows,
		Generated:   time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("PDF generation failed",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err))
		c.String(http.StatusInternalServerError, FailureMessage)
		return
	}

	h.logger.Info("PDF generated",
		zap.Int("rows", len(rows)),
		zap.Int("bytes", len(pdfBytes)))

	c.Header("Content-Disposition", "attachment; filename=tripguide-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) HealthHandler(c *gin.Context) {
	gen := h.svc.Generator()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "TripGuide API",
		"provider":     gen.Provider(),
		"model":        gen.Model(),
		"destinations": h.svc.Destinations(),
	})
}
