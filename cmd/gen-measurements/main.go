package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/perfdeck/perfdeck/internal/seedgen"
	"github.com/perfdeck/perfdeck/pkg/logger"
)

// Default configuration constants.
const (
	defaultAthletes  = 40
	defaultTrials    = 3
	defaultDates     = 4
	defaultSeed      = 42
	defaultDateStart = "2025-01-01"
	defaultDateEnd   = "2025-12-31"
)

func main() {
	var (
		out       = flag.String("out", "measurements.csv", "Output measurements CSV")
		athletes  = flag.Int("athletes", defaultAthletes, "Number of athletes on the synthetic roster")
		trials    = flag.Int("trials", defaultTrials, "Trials per metric per test date")
		dates     = flag.String("dates", "", "Comma-separated test dates YYYY-MM-DD. If omitted, random dates are sampled.")
		numDates  = flag.Int("num_random_dates", defaultDates, "If no -dates, how many random dates to sample")
		dateStart = flag.String("random_date_start", defaultDateStart, "Start of random date window YYYY-MM-DD")
		dateEnd   = flag.String("random_date_end", defaultDateEnd, "End of random date window YYYY-MM-DD")
		seed      = flag.Int64("seed", defaultSeed, "Random seed for reproducibility")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()

	opts := []seedgen.Option{
		seedgen.WithSeed(*seed),
		seedgen.WithAthletes(*athletes),
		seedgen.WithTrials(*trials),
	}
	if *dates != "" {
		parsed, err := parseDates(*dates)
		if err != nil {
			logger.Get().Error(ctx, "invalid -dates value", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, seedgen.WithDates(parsed))
	} else {
		start, err := time.Parse("2006-01-02", *dateStart)
		if err != nil {
			logger.Get().Error(ctx, "invalid -random_date_start value", logger.Error(err))
			os.Exit(1)
		}
		end, err := time.Parse("2006-01-02", *dateEnd)
		if err != nil {
			logger.Get().Error(ctx, "invalid -random_date_end value", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, seedgen.WithRandomDates(*numDates, start, end))
	}

	gen := seedgen.New(opts...)
	roster := gen.Roster()
	rows := gen.Measurements(roster)

	if err := seedgen.WriteCSVFile(*out, rows); err != nil {
		logger.Get().Error(ctx, "failed to write measurements", logger.Error(err))
		os.Exit(1)
	}

	logger.Get().Info(ctx, "wrote measurements",
		logger.String("out", *out),
		logger.Int("athletes", len(roster)),
		logger.Int("rows", len(rows)),
	)
}

func parseDates(raw string) ([]time.Time, error) {
	parts := strings.Split(raw, ",")
	dates := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
