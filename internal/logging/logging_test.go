package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/five82/picklist/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "picklist.log")

	logger, closer, err := New(config.LogConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	Component(logger, "store").Debug("record added")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "record added") || !strings.Contains(out, "component=store") {
		t.Fatalf("log output = %q, want message and component field", out)
	}
}

func TestNew_EmptyPathFails(t *testing.T) {
	if _, _, err := New(config.LogConfig{File: "  "}); err == nil {
		t.Fatalf("New returned nil error, want error for empty path")
	}
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logrus.New()
	Configure(logger, config.LogConfig{Level: "loud"})
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", logger.GetLevel())
	}
}

func TestConfigure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	Configure(logger, config.LogConfig{Level: "info", Format: "JSON"})

	Component(logger, "ui").WithField("code", 4).Info("selected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if entry["component"] != "ui" || entry["msg"] != "selected" {
		t.Fatalf("entry = %#v, want component ui msg selected", entry)
	}
}
