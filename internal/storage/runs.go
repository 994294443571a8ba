package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tilephys/internal/physics"
	"github.com/vovakirdan/tilephys/internal/sim"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// RunEntry summarizes a recorded scenario run.
type RunEntry struct {
	ID        int64
	Scenario  string
	Steps     int
	FinalX    int
	FinalY    int
	CreatedAt time.Time
}

// SaveRun stores a run and all of its frames in one transaction.
// Returns the ID of the new run.
func (s *Store) SaveRun(scenario string, frames []sim.Frame) (int64, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("storage: cannot save run %q without frames", scenario)
	}
	last := frames[len(frames)-1].Rect

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO runs (scenario, steps, final_x, final_y) VALUES (?, ?, ?, ?)",
		scenario, len(frames), last.X, last.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO run_frames (run_id, step, x, y, w, h, on_floor, on_ceiling, on_wall)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range frames {
		_, err := stmt.Exec(runID, f.Step, f.Rect.X, f.Rect.Y, f.Rect.W, f.Rect.H,
			f.Contact.Floor, f.Contact.Ceiling, f.Contact.Wall)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", f.Step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs first.
func (s *Store) ListRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, steps, final_x, final_y, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scenario, &e.Steps, &e.FinalX, &e.FinalY, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Run returns a single run summary.
func (s *Store) Run(runID int64) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, scenario, steps, final_x, final_y, created_at FROM runs WHERE id = ?`,
		runID,
	).Scan(&e.ID, &e.Scenario, &e.Steps, &e.FinalX, &e.FinalY, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, ErrRunNotFound
	}
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// RunFrames returns the frames of a run ordered by step.
func (s *Store) RunFrames(runID int64) ([]sim.Frame, error) {
	if _, err := s.Run(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT step, x, y, w, h, on_floor, on_ceiling, on_wall
		 FROM run_frames
		 WHERE run_id = ?
		 ORDER BY step`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []sim.Frame
	for rows.Next() {
		var f sim.Frame
		var c physics.Contact
		if err := rows.Scan(&f.Step, &f.Rect.X, &f.Rect.Y, &f.Rect.W, &f.Rect.H, &c.Floor, &c.Ceiling, &c.Wall); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		f.Contact = c
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return frames, nil
}
