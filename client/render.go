package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tripguide/itinerary"
)

// Render writes the itinerary text as a Day/Time/Activity table.
func Render(w io.Writer, text string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTIME\tACTIVITY")

	rows := itinerary.ParseRows(text)
	if len(rows) == 0 {
		fmt.Fprintln(tw, itinerary.NoRowsMessage)
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Day, r.Time, r.Activity)
	}
	return tw.Flush()
}
