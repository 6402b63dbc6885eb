// Command report prints a dues report as JSON without going through the HTTP
// server. Useful for cron summaries and manual reconciliation checks.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/reports"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/storage"
)

func main() {
	kind := flag.String("report", "annual", "report to run: annual, pitch, daily, matchday, upcoming, summary")
	year := flag.Int("year", time.Now().Year(), "calendar year (annual, pitch)")
	month := flag.Int("month", reports.AllMonths, "month 1-12, 0 for all (pitch)")
	day := flag.String("date", "", "date YYYY-MM-DD (daily)")
	limit := flag.Int("limit", reports.DefaultUpcomingLimit, "row limit (upcoming)")
	flag.Parse()

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export DB_DSN and retry")
		os.Exit(2)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	engine := reports.New(storage.New(db))
	ctx := context.Background()

	var out any
	switch *kind {
	case "annual":
		out, err = engine.Annual(ctx, *year)
	case "pitch":
		out, err = engine.Pitch(ctx, *month, *year)
	case "daily":
		if *day == "" {
			log.Fatal("--date is required for the daily report")
		}
		var d time.Time
		d, err = time.Parse("2006-01-02", *day)
		if err != nil {
			log.Fatalf("invalid --date: %v", err)
		}
		out, err = engine.Daily(ctx, d)
	case "matchday":
		out, err = engine.MatchDays(ctx, nil, nil)
	case "upcoming":
		out, err = engine.UpcomingPayments(ctx, *limit)
	case "summary":
		out, err = engine.PaymentTypeTotals(ctx)
	default:
		log.Fatalf("unknown report %q", *kind)
	}
	if err != nil {
		log.Fatalf("report failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
