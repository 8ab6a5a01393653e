package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Verbose {
		t.Fatal("expected Verbose to default to false")
	}
	if d.Emit {
		t.Fatal("expected Emit to default to false")
	}
	if d.HistoryFile != ".tscfront_history" {
		t.Fatalf("got %q, want %q", d.HistoryFile, ".tscfront_history")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != Defaults() {
		t.Fatalf("got %+v, want defaults %+v", opts, Defaults())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "verbose: true\nhistory_file: /tmp/hist\n")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.Verbose {
		t.Fatal("expected verbose to be overridden to true")
	}
	if opts.HistoryFile != "/tmp/hist" {
		t.Fatalf("got %q, want %q", opts.HistoryFile, "/tmp/hist")
	}
	if opts.Emit {
		t.Fatal("expected emit to keep its default of false since the file didn't mention it")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "verbose: [this is not a bool\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}
}
