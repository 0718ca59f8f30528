package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{" WARN ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewFileSinkJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "demo.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "debug"
	cfg.File = path

	logger, closeFn, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("slide confirmed", "progress", 0.9)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &rec); err != nil {
		t.Fatalf("not JSON: %q", data)
	}
	if rec["msg"] != "slide confirmed" || rec["progress"] != 0.9 {
		t.Errorf("record = %v", rec)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	cfg := DefaultConfig()
	cfg.Level = "warn"
	cfg.File = path

	logger, closeFn, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log = %q", data)
	}
}
