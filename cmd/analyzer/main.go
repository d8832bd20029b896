package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"msecli/internal/config"
	"msecli/internal/exporter"
	"msecli/internal/infrastructure"
	"msecli/internal/report"
	"msecli/internal/services"
	"msecli/internal/statements"
)

func main() {
	file := flag.String("file", "", "path to the statement workbook (.xlsx)")
	csvOut := flag.String("csv", "", "write ratios and scores to this CSV file")
	pdfOut := flag.String("pdf", "", "write the PDF report to this file")
	jsonOut := flag.Bool("json", false, "print the analysis result as JSON to stdout")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzer -file statements.xlsx [-csv out.csv] [-pdf out.pdf] [-json]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		cfg = &config.Config{Logging: config.LoggingConfig{Level: "info", Output: "console"}}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		logger = slog.Default()
	}

	svc := services.NewAnalysisService(logger)
	result, err := svc.AnalyzeFile(context.Background(), *file)
	if err != nil {
		var structural *statements.StructuralError
		if errors.As(err, &structural) {
			fmt.Fprintf(os.Stderr, "analysis cannot proceed: %v\n", structural)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
			os.Exit(1)
		}
	}

	if *csvOut != "" {
		if err := exporter.NewCSVWriter().WriteFile(*csvOut, result); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		logger.Info("CSV written", slog.String("path", *csvOut))
	}

	if *pdfOut != "" {
		pdfBytes, err := report.NewGenerator().Generate(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate PDF: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*pdfOut, pdfBytes, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write PDF: %v\n", err)
			os.Exit(1)
		}
		logger.Info("PDF written", slog.String("path", *pdfOut))
	}

	if !*jsonOut && *csvOut == "" && *pdfOut == "" {
		fmt.Printf("%s: %s (%s)\n", result.ZScore.Name, result.ZScore.Value.Format(2), result.ZScore.Classification)
		fmt.Printf("%s: %s (%s)\n", result.FScore.Name, result.FScore.Value.Format(0), result.FScore.Classification)
	}
}
