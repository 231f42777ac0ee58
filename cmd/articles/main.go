// Package main provides the articles command, which renders a markdown report
// for a catalogue of articles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"articlekit/internal/catalogue"
	"articlekit/internal/config"
	"articlekit/internal/formatter"
	"articlekit/internal/logger"
	"articlekit/internal/models"
	"articlekit/internal/normalizer"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "articles: %v\n", err)
		}

		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("articles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config file (optional)")
	input := fs.String("input", "", "Catalogue file (.yaml, .yml or .json)")
	format := fs.String("format", "", "Catalogue format, detected from the extension when empty")
	output := fs.String("output", "", "Report path; '-' writes to stdout")
	intro := fs.Int("intro", 0, "Characters of content in each short introduction")
	top := fs.Int("top", 0, "Number of most common words per article")
	firstID := fs.Int("first-id", 0, "First article id (default: process-wide sequence)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags win over the config file and the environment.
	if *input != "" {
		cfg.Catalogue.Path = *input
	}

	if *format != "" {
		cfg.Catalogue.Format = *format
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "first-id" {
			cfg.Catalogue.FirstID = firstID
		}
	})

	if *output != "" {
		cfg.Report.Path = *output
	}

	if *intro > 0 {
		cfg.Report.IntroLength = *intro
	}

	if *top > 0 {
		cfg.Report.TopWords = *top
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	log := logger.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	log.Debug("configuration loaded", "config", cfg.String())

	startTime := time.Now()

	entries, err := catalogue.Load(cfg.Catalogue.Path, cfg.Catalogue.Format)
	if err != nil {
		return err
	}

	log.Info("catalogue loaded", "path", cfg.Catalogue.Path, "entries", len(entries))

	seq := models.DefaultSequence()
	if cfg.Catalogue.FirstID != nil {
		seq = models.NewSequence(*cfg.Catalogue.FirstID)
	}

	articles, err := normalizer.NewProcessor(models.WithSequence(seq)).Process(entries)
	if err != nil {
		return err
	}

	for _, a := range articles {
		log.Debug("article", "id", a.ID(), "title", a.Title, "length", a.Len())
	}

	report := formatter.RenderReport(articles, formatter.ReportOptions{
		IntroLength: cfg.Report.IntroLength,
		TopWords:    cfg.Report.TopWords,
	})

	if cfg.Report.Path == "-" {
		_, err := io.WriteString(stdout, report)

		return err
	}

	reportPath := cfg.GetReportPath()

	if err := os.MkdirAll(filepath.Dir(reportPath), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(reportPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("report written", "path", reportPath, "articles", len(articles), "duration", time.Since(startTime))

	return nil
}
