package itinerary

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Document is what gets printed: the destination and the parsed rows.
type Document struct {
	Destination string
	Rows        []Row
	Generated   time.Time
}

const (
	dayWidth      = 30.0
	timeWidth     = 35.0
	activityWidth = 105.0
	lineHeight    = 6.0
	pageMargin    = 20.0
)

// RenderPDF lays the rows out as an A4 table and returns the PDF bytes.
// An empty row set prints the same placeholder the web table shows.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripGuide", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	title := "AI Travel Itinerary"
	if doc.Destination != "" {
		title += " - " + doc.Destination
	}
	pdf.CellFormat(170, 6, tr(title), "", 1, "L", false, 0, "")

	pdf.SetY(35)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 8, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4, "Generated by an AI model from a limited knowledge base. Verify opening hours before you travel.", "", "C", false)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Table Header ─────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(dayWidth, 8, "Day", "1", 0, "L", true, 0, "")
	pdf.CellFormat(timeWidth, 8, "Time", "1", 0, "L", true, 0, "")
	pdf.CellFormat(activityWidth, 8, "Activity", "1", 1, "L", true, 0, "")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "", 10)

	if len(doc.Rows) == 0 {
		pdf.CellFormat(dayWidth+timeWidth+activityWidth, 8, NoRowsMessage, "1", 1, "C", false, 0, "")
	}

	_, pageHeight := pdf.GetPageSize()
	for _, r := range doc.Rows {
		activity := tr(r.Activity)
		lines := pdf.SplitLines([]byte(activity), activityWidth-2)
		h := lineHeight * float64(max(len(lines), 1))

		if pdf.GetY()+h > pageHeight-pageMargin {
			pdf.AddPage()
		}

		pdf.CellFormat(dayWidth, h, tr(r.Day), "1", 0, "L", false, 0, "")
		pdf.CellFormat(timeWidth, h, tr(r.Time), "1", 0, "L", false, 0, "")
		pdf.MultiCell(activityWidth, lineHeight, activity, "1", "L", false)
	}

	// ── Footer ────────────────────────────────────────────────
	generated := doc.Generated
	if generated.IsZero() {
		generated = time.Now().UTC()
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Generated %s", generated.Format("02 Jan 2006, 15:04 UTC")),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
