package tracker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	ts "github.com/samuelfneumann/gobark/timestep"
)

// StepRecord is a single tracked timestep as stored by SQLite
type StepRecord struct {
	RunID    string
	Episode  int
	Step     int
	Reward   float64
	Last     bool
	EndType  string
	Info     map[string]interface{}
	InfoJSON string
}

// SQLite tracks every timestep of an experiment, including the merged
// evaluator info, and saves them to a SQLite database. Each SQLite
// tracker writes under its own run id so that several experiments can
// share one database.
type SQLite struct {
	path  string
	runID string

	mu      sync.Mutex
	db      *sql.DB
	episode int
	started bool
	cache   []StepRecord
}

// NewSQLite opens (creating if needed) the database at path and
// returns a new SQLite tracker with a fresh run id
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{path: path, runID: uuid.NewString(), db: db}, nil
}

// RunID returns the id that tracked steps are saved under
func (s *SQLite) RunID() string {
	return s.runID
}

// Track caches a timestep. Episodes are numbered from 0 in the order
// in which their first timesteps are tracked.
func (s *SQLite) Track(t ts.TimeStep) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.First() && s.started {
		s.episode++
	}
	s.started = true
	s.cache = append(s.cache, StepRecord{
		RunID:   s.runID,
		Episode: s.episode,
		Step:    t.Number,
		Reward:  t.Reward,
		Last:    t.Last(),
		EndType: t.EndType().String(),
		Info:    t.Info,
	})
}

// Save writes all cached timesteps to the database
func (s *SQLite) Save() error {
	return s.SaveContext(context.Background())
}

// SaveContext writes all cached timesteps to the database in a single
// transaction. The cache is cleared only if the transaction commits.
func (s *SQLite) SaveContext(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return errors.New("sqlite tracker is closed")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (run_id) VALUES (?)
		ON CONFLICT(run_id) DO NOTHING
	`, s.runID); err != nil {
		return err
	}

	for _, r := range s.cache {
		info, err := json.Marshal(r.Info)
		if err != nil {
			return fmt.Errorf("encode info of step %v: %w", r.Step, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO steps (run_id, episode, step, reward, is_last, end_type, info)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, episode, step) DO UPDATE SET
				reward = excluded.reward,
				is_last = excluded.is_last,
				end_type = excluded.end_type,
				info = excluded.info
		`, r.RunID, r.Episode, r.Step, r.Reward, r.Last, r.EndType, string(info))
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.cache = s.cache[:0]
	return nil
}

// Steps returns all saved steps of run runID ordered by episode and
// step number
func (s *SQLite) Steps(ctx context.Context, runID string) ([]StepRecord,
	error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, episode, step, reward, is_last, end_type, info
		FROM steps
		WHERE run_id = ?
		ORDER BY episode, step
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []StepRecord
	for rows.Next() {
		var r StepRecord
		if err := rows.Scan(&r.RunID, &r.Episode, &r.Step, &r.Reward,
			&r.Last, &r.EndType, &r.InfoJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(r.InfoJSON), &r.Info); err != nil {
			return nil, fmt.Errorf("decode info of step %v: %w", r.Step, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Runs returns the ids of all runs saved in the database
func (s *SQLite) Runs(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT run_id FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database. Cached steps that were not saved are
// lost.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLite) getDB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.New("sqlite tracker is closed")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS steps (
			run_id TEXT NOT NULL,
			episode INTEGER NOT NULL,
			step INTEGER NOT NULL,
			reward REAL NOT NULL,
			is_last INTEGER NOT NULL,
			end_type TEXT NOT NULL,
			info TEXT NOT NULL,
			PRIMARY KEY (run_id, episode, step)
		);
	`)
	return err
}
