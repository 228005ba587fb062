package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendRunLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	first := newRunLog(42, 1)
	first.Turns = 12
	first.Kills["Orc"] = 2
	first.CauseOfDeath = "Goblin"
	first.EndedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	second := newRunLog(43, 3)

	for _, rl := range []RunLog{first, second} {
		if err := appendRunLog(dir, rl); err != nil {
			t.Fatalf("appendRunLog: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var got []RunLog
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rl RunLog
		if err := json.Unmarshal(sc.Bytes(), &rl); err != nil {
			t.Fatalf("line %d: %v", len(got)+1, err)
		}
		got = append(got, rl)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines; want 2", len(got))
	}
	if got[0].Seed != 42 || got[0].Turns != 12 || got[0].Kills["Orc"] != 2 || got[0].CauseOfDeath != "Goblin" {
		t.Errorf("first run = %+v", got[0])
	}
	if !got[0].EndedAt.Equal(first.EndedAt) {
		t.Errorf("ended at %v; want %v", got[0].EndedAt, first.EndedAt)
	}
	if got[1].Depth != 3 || got[1].CauseOfDeath != "" {
		t.Errorf("second run = %+v", got[1])
	}
}

func TestAppendRunLogNeedsDir(t *testing.T) {
	if err := appendRunLog("", newRunLog(1, 1)); err == nil {
		t.Fatal("want an error for an empty dir")
	}
}
