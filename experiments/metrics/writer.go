package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type GameRecord struct {
	ID   string // uuid of the game
	Game int    // 1-based index within the run
	GameMetric
}

// Setup describes one batch run.
type Setup struct {
	RunID     string        `json:"runId"`
	Games     int           `json:"games"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Guards    int           `json:"guards"`
	Energy    int           `json:"energy"`
	Pursuit   string        `json:"pursuit"`
	BaseSeed  uint64        `json:"baseSeed"`
	Explore   float64       `json:"explore"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<runID> to hold the run's files.
func NewWriter(root, runID string) (*Writer, error) {
	baseDir := filepath.Join(root, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	data, err := sonic.ConfigStd.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}

	path := filepath.Join(w.baseDir, "setup.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "game", "seed", "status", "turns", "energy_left", "moves", "toggles", "diagnostics", "critical_inactive", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.Itoa(record.Game),
			strconv.FormatUint(record.Seed, 10),
			record.Status,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.EnergyLeft),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Toggles),
			strconv.Itoa(record.Diagnostics),
			strconv.Itoa(record.CriticalInactive),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
