package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLoggerCarriesAppAndServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "worker", "info")

	logger.Info("cv processed", "cv_id", "cv-1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["app"] != appName {
		t.Errorf("app = %v, want %q", record["app"], appName)
	}
	if record["service"] != "worker" {
		t.Errorf("service = %v, want worker", record["service"])
	}
	if record["cv_id"] != "cv-1" {
		t.Errorf("cv_id = %v", record["cv_id"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "api", "warn")

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %s", buf.String())
	}
	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn record missing")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARNING ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
