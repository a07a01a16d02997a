package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"tripguide/client"
	"tripguide/handlers"
)

func main() {
	server := pflag.String("server", envOr("TRIPGUIDE_URL", client.DefaultBaseURL), "TripGuide server base URL")
	destination := pflag.StringP("destination", "d", "", "destination to plan (required)")
	days := pflag.String("days", "", "number of days")
	people := pflag.String("people", "", "number of travellers")
	start := pflag.String("start", "", "start date (YYYY-MM-DD)")
	end := pflag.String("end", "", "end date (YYYY-MM-DD)")
	raw := pflag.Bool("raw", false, "print the itinerary text without a table")
	pflag.Parse()

	if *destination == "" {
		fmt.Fprintln(os.Stderr, "--destination is required")
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	text, err := client.New(*server).RequestItinerary(ctx, handlers.TripPayload{
		Destination: *destination,
		NumDays:     *days,
		NumPeople:   *people,
		StartDate:   *start,
		EndDate:     *end,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "An error occurred:", err)
		os.Exit(1)
	}

	if *raw {
		fmt.Println(text)
		return
	}
	if err := client.Render(os.Stdout, text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
