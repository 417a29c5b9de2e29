package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Run records one generation run for later reporting.
type Run struct {
	ID           string
	Sources      string // human-readable summary, e.g. "words=3 urls=1"
	OutputPath   string
	BaseWords    int
	Mutations    int
	Combinations int
	Filtered     int
	Total        int
	Duration     time.Duration
	CreatedAt    time.Time
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			sources TEXT NOT NULL,
			output_path TEXT NOT NULL,
			base_words INTEGER NOT NULL,
			mutations INTEGER NOT NULL,
			combinations INTEGER NOT NULL,
			filtered INTEGER NOT NULL,
			total INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a run record and returns it with its assigned id.
func (s *Store) SaveRun(run Run) (*Run, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, sources, output_path, base_words, mutations, combinations, filtered, total, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Sources, run.OutputPath,
		run.BaseWords, run.Mutations, run.Combinations, run.Filtered, run.Total,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return nil, err
	}

	return s.GetRun(id)
}

func (s *Store) GetRun(id string) (*Run, error) {
	var r Run
	var durationMS int64
	err := s.db.QueryRow(
		`SELECT id, sources, output_path, base_words, mutations, combinations, filtered, total, duration_ms, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Sources, &r.OutputPath, &r.BaseWords, &r.Mutations, &r.Combinations,
		&r.Filtered, &r.Total, &durationMS, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	return &r, nil
}

func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, sources, output_path, base_words, mutations, combinations, filtered, total, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Sources, &r.OutputPath, &r.BaseWords, &r.Mutations,
			&r.Combinations, &r.Filtered, &r.Total, &durationMS, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}
