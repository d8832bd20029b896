// Package listing fetches the listed-company table from the Mongolian
// Stock Exchange website. It is a collaborator of the analysis engine,
// not part of it: nothing here feeds the ratio computation.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"msecli/internal/config"
)

// Company is one listed company from the exchange site.
type Company struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Scraper fetches the company listing with a headless browser. The site
// renders its tables client-side, so a plain HTTP fetch is not enough.
type Scraper struct {
	cfg    config.ListingConfig
	logger *slog.Logger
}

// NewScraper creates a listing scraper.
func NewScraper(cfg config.ListingConfig, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{cfg: cfg, logger: logger}
}

// extractRowsJS pulls [symbol, name] pairs out of the companies table.
const extractRowsJS = `
Array.from(document.querySelectorAll("table tbody tr")).map(function(tr) {
	return Array.from(tr.querySelectorAll("td")).slice(0, 2).map(function(td) {
		return td.innerText.trim();
	});
})`

// Fetch navigates to the companies page and extracts the listing.
func (s *Scraper) Fetch(ctx context.Context) ([]Company, error) {
	start := time.Now()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.cfg.Timeout)
	defer cancelRun()

	s.logger.InfoContext(ctx, "fetching company listing",
		slog.String("url", s.cfg.URL),
		slog.Bool("headless", s.cfg.Headless))

	var rows [][]string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(s.cfg.URL),
		chromedp.WaitVisible("table tbody tr", chromedp.ByQuery),
		chromedp.Evaluate(extractRowsJS, &rows),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape company listing: %w", err)
	}

	companies := ParseCompanies(rows)
	s.logger.InfoContext(ctx, "company listing fetched",
		slog.Int("companies", len(companies)),
		slog.Duration("duration", time.Since(start)))

	return companies, nil
}

// ParseCompanies converts raw table rows into companies, skipping header
// leftovers and rows without a symbol.
func ParseCompanies(rows [][]string) []Company {
	var companies []Company
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		symbol := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if symbol == "" || name == "" {
			continue
		}
		companies = append(companies, Company{Symbol: symbol, Name: name})
	}
	return companies
}
