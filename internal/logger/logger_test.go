package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			InitTo(&bytes.Buffer{}, tt.in, "text")
			if Log.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.want)
			}
		})
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "info", "JSON")
	Log.WithField("lives", 2).Info("life lost")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if rec["msg"] != "life lost" || rec["lives"] != float64(2) {
		t.Errorf("record = %v", rec)
	}
}

func TestInitText(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "info", "text")
	Log.Debug("hidden")
	Log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q", out)
	}
}
