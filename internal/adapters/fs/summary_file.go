package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/framezip/internal/domain"
)

// Summary describes one completed run.
type Summary struct {
	RunID       uuid.UUID     `json:"run_id"`
	InputDir    string        `json:"input_dir"`
	Container   string        `json:"container"`
	Stats       domain.Stats  `json:"stats"`
	Rate        *float64      `json:"rate,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	FirstFrame  string        `json:"first_frame,omitempty"`
	LastFrame   string        `json:"last_frame,omitempty"`
	ContainerSz int64         `json:"container_bytes"`
}

// SummaryFile persists a Summary as JSON.
type SummaryFile struct {
	path string
}

// NewSummaryFile creates a SummaryFile for the given path.
func NewSummaryFile(path string) *SummaryFile {
	return &SummaryFile{path: path}
}

// Load reads a previously saved summary.
func (s *SummaryFile) Load() (Summary, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Save writes the summary atomically (temp file, then rename).
func (s *SummaryFile) Save(sum Summary) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
