package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "mixed case", input: " DEBUG ", want: slog.LevelDebug},
		{name: "warn alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "invalid", input: "nope", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Fatalf("parseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOpenOutputDefaultsToStderr(t *testing.T) {
	if got := openOutput("  "); got != os.Stderr {
		t.Fatalf("expected stderr for empty path, got %T", got)
	}
}

func TestOpenOutputFallsBackWhenFileUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "skrib.log")
	if got := openOutput(missing); got != os.Stderr {
		t.Fatalf("expected stderr fallback, got %T", got)
	}
}

func TestOpenOutputAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skrib.log")
	w := openOutput(path)
	f, ok := w.(*os.File)
	if !ok || f == os.Stderr {
		t.Fatalf("expected a log file, got %T", w)
	}
	defer f.Close()

	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("write log: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "line\n" {
		t.Fatalf("unexpected log content %q", data)
	}
}
