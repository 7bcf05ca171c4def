package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists experiments as JSON payloads in a sqlite database.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveExperiment(ctx context.Context, experiment ExperimentResult) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := encodeExperiment(experiment)
	if err != nil {
		return fmt.Errorf("encode experiment %s: %w", experiment.RunID, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO experiments (run_id, architecture, run, mean_test_accuracy, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			architecture = excluded.architecture,
			run = excluded.run,
			mean_test_accuracy = excluded.mean_test_accuracy,
			created_at = excluded.created_at,
			payload = excluded.payload
	`, experiment.RunID, experiment.ArchitectureString(), experiment.Run,
		experiment.MeanTestAccuracy, experiment.CreatedAt.UnixNano(), payload)
	return err
}

func (s *SQLiteStore) GetExperiment(ctx context.Context, runID string) (ExperimentResult, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return ExperimentResult{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM experiments WHERE run_id = ?`, runID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ExperimentResult{}, false, nil
		}
		return ExperimentResult{}, false, err
	}

	experiment, err := decodeExperiment(payload)
	if err != nil {
		return ExperimentResult{}, false, fmt.Errorf("decode experiment %s: %w", runID, err)
	}
	return experiment, true, nil
}

func (s *SQLiteStore) ListExperiments(ctx context.Context) ([]ExperimentResult, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT run_id, payload FROM experiments ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExperimentResult
	for rows.Next() {
		var (
			runID   string
			payload []byte
		)
		if err := rows.Scan(&runID, &payload); err != nil {
			return nil, err
		}
		experiment, err := decodeExperiment(payload)
		if err != nil {
			return nil, fmt.Errorf("decode experiment %s: %w", runID, err)
		}
		out = append(out, experiment)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS experiments (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			architecture TEXT NOT NULL,
			run INTEGER NOT NULL,
			mean_test_accuracy REAL NOT NULL,
			created_at INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
