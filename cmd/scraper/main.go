package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"msecli/internal/config"
	"msecli/internal/infrastructure"
	"msecli/internal/listing"
)

func main() {
	out := flag.String("out", "companies.csv", "path to write the company listing CSV")
	headless := flag.Bool("headless", true, "run browser headless")
	timeout := flag.Duration("timeout", 60*time.Second, "scrape timeout")
	url := flag.String("url", "", "override the companies page URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "info", Output: "console"},
			Listing: config.ListingConfig{URL: "https://mse.mn/en/companies"},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		logger = slog.Default()
	}

	listingCfg := cfg.Listing
	listingCfg.Headless = *headless
	listingCfg.Timeout = *timeout
	if *url != "" {
		listingCfg.URL = *url
	}

	logger.Info("MSE company listing scraper starting",
		slog.String("url", listingCfg.URL),
		slog.String("out", *out))

	scraper := listing.NewScraper(listingCfg, logger)
	companies, err := scraper.Fetch(context.Background())
	if err != nil {
		logger.Error("scrape failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeCSV(*out, companies); err != nil {
		logger.Error("failed to write listing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("listing written",
		slog.String("path", *out),
		slog.Int("companies", len(companies)))
}

func writeCSV(path string, companies []listing.Company) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Symbol", "Name"}); err != nil {
		return err
	}
	for _, c := range companies {
		if err := w.Write([]string{c.Symbol, c.Name}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
