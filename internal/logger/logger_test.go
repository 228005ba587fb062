package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesJSONToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "dungeon.log")
	closer, err := Init(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	Log.WithField("system", "melee").Debug("resolved")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"system":"melee"`) {
		t.Errorf("log line missing field: %q", data)
	}
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	if _, err := Init(Options{Level: "loud"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v; want info", Log.GetLevel())
	}
}

func TestInitBadPath(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	bad := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	if _, err := Init(Options{File: bad}); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
