package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ITesserakt/kodept/internal/config"
)

func writeSource(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDiscoverDeduplicatesAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.kd", "fun b() => 1")
	writeSource(t, dir, "a.kd", "fun a() => 1")

	files, err := Discover([]string{filepath.Join(dir, "*.kd"), filepath.Join(dir, "*.kd")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 deduplicated files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.kd" || filepath.Base(files[1]) != "b.kd" {
		t.Fatalf("expected sorted order a.kd, b.kd, got %v", files)
	}
}

func TestRunProducesCleanResultForValidSource(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ok.kd", "fun id(x) => x")

	d := New(config.Default(), nil)
	results, err := d.Run(context.Background(), []string{filepath.Join(dir, "*.kd")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if len(results[0].Reports) != 0 {
		t.Fatalf("expected no reports for valid source, got %v", results[0].Reports)
	}
	if ExitCode(results) != 0 {
		t.Fatalf("expected exit code 0")
	}
}

func TestRunWithPatternMatchingNothingReturnsNoResults(t *testing.T) {
	d := New(config.Default(), nil)
	results, err := d.Run(context.Background(), []string{"/nonexistent/path/does-not-exist.kd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no matches for a pattern matching nothing, got %v", results)
	}
	if ExitCode(results) != 0 {
		t.Fatalf("expected exit code 0 for zero discovered files")
	}
}

func TestRunReportsParseError(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.kd", "fun (((")

	d := New(config.Default(), nil)
	results, err := d.Run(context.Background(), []string{filepath.Join(dir, "*.kd")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if len(results[0].Reports) == 0 {
		t.Fatalf("expected a parse-error report for malformed source")
	}
	if ExitCode(results) != 1 {
		t.Fatalf("expected exit code 1 for a file with an error report")
	}
}
