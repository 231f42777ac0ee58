package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"articlekit/internal/config"
	"articlekit/internal/field"
	"articlekit/internal/models"
)

const catalogueYAML = `
- title: "Later"
  author: "Ann"
  published: 2021-01-01
  content: "one one two three three three"
- title: "Earlier"
  author: "Bob"
  published: 2020-01-01T00:00:00
  content: "The quick brown fox jumps"
  attribute: 1
`

func writeCatalogue(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalogue: %v", err)
	}

	return path
}

func TestRun_Stdout(t *testing.T) {
	input := writeCatalogue(t, "articles.yaml", catalogueYAML)

	var stdout, stderr bytes.Buffer

	err := run([]string{"-input", input, "-output", "-", "-intro", "11", "-top", "2", "-first-id", "7"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	report := stdout.String()

	for _, want := range []string{
		"`<Article title=\"Earlier\" author='Bob' publication_date='2020-01-01T00:00:00'>`",
		"> The quick",
		"| three | 3     |",
		"| 8   | Earlier |",
		"| 7   | Later   |",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}

	if strings.Index(report, "## Earlier") > strings.Index(report, "## Later") {
		t.Error("report is not ordered by publication date")
	}
}

func TestRun_FirstIDZero(t *testing.T) {
	input := writeCatalogue(t, "articles.yaml", catalogueYAML)

	// Move the process-wide sequence past 0 so an ignored flag would show.
	models.DefaultSequence().Next()

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-input", input, "-output", "-", "-first-id", "0"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	report := stdout.String()
	for _, want := range []string{"| 1   | Earlier |", "| 0   | Later   |"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}
}

func TestRun_NegativeFirstID(t *testing.T) {
	input := writeCatalogue(t, "articles.yaml", catalogueYAML)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-input", input, "-first-id", "-3"}, &stdout, &stderr); !errors.Is(err, config.ErrInvalidFirstID) {
		t.Errorf("run with -first-id -3 = %v, want ErrInvalidFirstID", err)
	}
}

func TestRun_WritesReportFile(t *testing.T) {
	input := writeCatalogue(t, "articles.yaml", catalogueYAML)
	output := filepath.Join(t.TempDir(), "nested", "report.md")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-input", input, "-output", output}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}

	if !strings.HasPrefix(string(data), "# Articles") {
		t.Errorf("unexpected report:\n%s", data)
	}

	if !strings.Contains(stderr.String(), "report written") {
		t.Errorf("expected a log line for the written report, got %q", stderr.String())
	}
}

func TestRun_ConfigFile(t *testing.T) {
	input := writeCatalogue(t, "articles.json",
		`[{"title": "Only", "author": "Cy", "published": "2020-05-05", "content": "alpha beta"}]`)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.Default()
	cfg.Catalogue.Path = input
	cfg.Report.Path = "-"
	cfg.Logging.Level = "error"

	if err := cfg.SaveConfig(cfgPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfgPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "## Only") {
		t.Errorf("report missing article\n%s", stdout.String())
	}

	if stderr.Len() != 0 {
		t.Errorf("expected no logs at error level, got %q", stderr.String())
	}
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := run(nil, &stdout, &stderr); !errors.Is(err, config.ErrMissingCataloguePath) {
		t.Errorf("run without input = %v, want ErrMissingCataloguePath", err)
	}

	badAttr := writeCatalogue(t, "bad.yaml",
		"- {title: T, author: A, published: 2020-01-01, content: c, attribute: nope}\n")
	if err := run([]string{"-input", badAttr, "-output", "-"}, &stdout, &stderr); !errors.Is(err, field.ErrTypeMismatch) {
		t.Errorf("run with string attribute = %v, want type mismatch", err)
	}

	if err := run([]string{"-input", "/nonexistent.yaml"}, &stdout, &stderr); err == nil {
		t.Error("run with missing catalogue should fail")
	}

	if err := run([]string{"-unknown"}, &stdout, &stderr); err == nil {
		t.Error("run with unknown flag should fail")
	}
}
