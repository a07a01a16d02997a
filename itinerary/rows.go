// Package itinerary turns the model's free-text answer into table rows.
//
// The model is asked for prose, not a schema, so the rules here are
// heuristics: a usable line looks like "Day 1 | Morning | Visit the Louvre".
package itinerary

import "strings"

// NoRowsMessage is shown in place of the table when nothing parses.
const NoRowsMessage = "No valid itinerary found. Please try again."

// Row is one parsed line of the itinerary.
type Row struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// lines containing any of these are never itinerary rows
var rejectMarkers = []string{`\boxed`, "undefined", "{", "}"}

// ParseRows applies the line filter and pipe split to text. Lines that are
// blank, contain a reject marker, or have fewer than three non-empty fields
// are skipped. Fields past the third are ignored.
func ParseRows(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		if !keepLine(line) {
			continue
		}

		fields := strings.Split(line, "|")
		var day, time, activity string
		if len(fields) > 0 {
			day = strings.TrimSpace(fields[0])
		}
		if len(fields) > 1 {
			time = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			activity = strings.TrimSpace(fields[2])
		}
		if day == "" || time == "" || activity == "" {
			continue
		}

		rows = append(rows, Row{Day: day, Time: time, Activity: activity})
	}
	return rows
}

func keepLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	for _, m := range rejectMarkers {
		if strings.Contains(line, m) {
			return false
		}
	}
	return true
}
