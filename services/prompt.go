package services

import (
	"fmt"
	"strings"

	"tripguide/knowledge"
)

// Trip is what the traveller typed into the form. Everything except
// Destination is optional and passed to the model as-is.
type Trip struct {
	Destination string
	NumDays     string
	NumPeople   string
	StartDate   string
	EndDate     string
}

const groundedTemplate = `You are a helpful travel assistant. Answer the user's question based ONLY on the provided context below.
If the information to answer the question is not in the context, say "I cannot find that information in my data." Do not use any outside knowledge.

CONTEXT:
%s

QUESTION:
%s

Format each planned activity on its own line as: Day | Time | Activity`

// BuildPrompt embeds the entry's record in the grounding template.
func BuildPrompt(entry knowledge.Entry, trip Trip) string {
	return fmt.Sprintf(groundedTemplate, entry.Context(), question(entry.Name, trip))
}

func question(name string, trip Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tell me about the attractions in %s.", name)

	var details []string
	if trip.NumDays != "" {
		details = append(details, fmt.Sprintf("for %s day(s)", trip.NumDays))
	}
	if trip.NumPeople != "" {
		details = append(details, fmt.Sprintf("for %s people", trip.NumPeople))
	}
	if trip.StartDate != "" && trip.EndDate != "" {
		details = append(details, fmt.Sprintf("from %s to %s", trip.StartDate, trip.EndDate))
	} else if trip.StartDate != "" {
		details = append(details, fmt.Sprintf("starting %s", trip.StartDate))
	}
	if len(details) > 0 {
		fmt.Fprintf(&b, " Plan a visit %s.", strings.Join(details, " "))
	}
	return b.String()
}

// NoDataMessage is the answer when the destination is not in the knowledge
// base. It is a normal reply, not an error.
func NoDataMessage(destination string, known []string) string {
	return fmt.Sprintf("Sorry, I do not have any information about \"%s\" in my database. I only have data on %s.",
		destination, joinNames(known))
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "no destinations yet"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
