package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed         int64          `json:"seed"`
	Depth        int            `json:"depth"`
	Turns        int            `json:"turns"`
	Kills        map[string]int `json:"kills"` // name -> kill count
	CauseOfDeath string         `json:"cause_of_death,omitempty"`
	EndedAt      time.Time      `json:"ended_at"`
}

func newRunLog(seed int64, depth int) RunLog {
	return RunLog{Seed: seed, Depth: depth, Kills: make(map[string]int)}
}

// appendRunLog appends the completed run as a single JSON line to
// dir/runs.jsonl.
func appendRunLog(dir string, log RunLog) error {
	if dir == "" {
		return fmt.Errorf("run log dir is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
