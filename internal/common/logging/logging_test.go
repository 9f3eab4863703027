package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "debug", "production")

	logger.WithField("user_id", 3).Info("user created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "user created" {
		t.Errorf("expected msg 'user created', got %v", entry["msg"])
	}
	if entry["user_id"] != float64(3) {
		t.Errorf("expected user_id 3, got %v", entry["user_id"])
	}
}

func TestNewDevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "info", "development")

	logger.Info("listening")

	if !strings.Contains(buf.String(), `msg=listening`) {
		t.Errorf("expected text formatter output, got %q", buf.String())
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewWithOutput(&bytes.Buffer{}, "chatty", "development")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected info level, got %s", logger.GetLevel())
	}
}
