package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one experiment run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// WriteAgentConfigs writes the agent roster to agent_configs.csv.
func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Depth),
		})
	}
	return w.writeFile("agent_configs.csv", []string{"id", "depth"}, rows)
}

// WriteGameRecords writes per-game summaries to games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "moves", "duration_us"}
	return w.writeFile("games.csv", header, rows)
}

// WriteMoveRecords writes per-move search timings to moves.csv.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Agent),
			r.Move,
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	header := []string{"game", "step", "agent", "move", "duration_us"}
	return w.writeFile("moves.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
