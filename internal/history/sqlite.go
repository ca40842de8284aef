package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"CycleSentinel/internal/model"
)

// SQLiteStore persists the history in a SQLite database, one row per day.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block the daily write.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite history store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS analysis_history (
		date       TEXT PRIMARY KEY,
		percentage INTEGER NOT NULL,
		complete   INTEGER NOT NULL DEFAULT 0,
		details    TEXT
	)`)
	return err
}

func (s *SQLiteStore) Load() ([]model.AnalysisHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, percentage, complete, details
		FROM analysis_history ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []model.AnalysisHistoryEntry
	for rows.Next() {
		var e model.AnalysisHistoryEntry
		var complete int
		var details sql.NullString
		if err := rows.Scan(&e.Date, &e.Percentage, &complete, &details); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Complete = complete != 0
		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &e.Details); err != nil {
				return nil, fmt.Errorf("decode details for %s: %w", e.Date, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Save(entries []model.AnalysisHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM analysis_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO analysis_history
		(date, percentage, complete, details) VALUES (?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var details any
		if len(e.Details) > 0 {
			data, err := json.Marshal(e.Details)
			if err != nil {
				return fmt.Errorf("encode details for %s: %w", e.Date, err)
			}
			details = string(data)
		}
		complete := 0
		if e.Complete {
			complete = 1
		}
		if _, err := stmt.Exec(e.Date, e.Percentage, complete, details); err != nil {
			return fmt.Errorf("insert %s: %w", e.Date, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
