package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shoebox/internal/logging"
)

func TestConsoleHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "store")
	logger.Info("loaded document", logging.String(logging.FieldDocument, "photos"), logging.Int("count", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO store: loaded document") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "document=photos") || !strings.Contains(line, "count=3") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("save failed", logging.String(logging.FieldDocument, "albums"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("parse json log line: %v", err)
	}
	if record["level"] != "warn" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if record["msg"] != "save failed" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["document"] != "albums" {
		t.Fatalf("unexpected document attr: %v", record["document"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line should be filtered: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerStaysSilent(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("nothing happens", logging.Error(nil))
}
