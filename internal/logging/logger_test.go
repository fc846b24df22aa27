package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"untracker/internal/logging"
)

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible", "voice", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "voice=3") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewJSONRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("extracted stem")

	out := buf.String()
	for _, want := range []string{`"ts"`, `"level":"info"`, `"msg":"extracted stem"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("json record missing %s: %q", want, out)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
