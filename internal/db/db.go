// Package db persists agreement evaluation runs to SQLite. Each run stores
// the corpus-wide means plus one row per scored item, so successive runs
// over the same corpus can be compared after parser or annotation changes.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/onpoeet/cadence-detection/internal/agreement"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) the SQLite database at path and
// ensures the schema exists.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id             TEXT PRIMARY KEY,
			source_dir         TEXT,
			window_size        BIGINT,
			weighted           BOOLEAN,
			item_count         BIGINT,
			failure_count      BIGINT,
			mean_kappa         DOUBLE,
			mean_pk            DOUBLE,
			mean_window_diff   DOUBLE,
			created_at         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS item_scores (
			run_id             TEXT,
			item_id            TEXT,
			annotators         BIGINT,
			kappa              DOUBLE,
			pk                 DOUBLE,
			window_diff        DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// Run describes one persisted evaluation run.
type Run struct {
	RunID          string    `json:"run_id"`
	SourceDir      string    `json:"source_dir"`
	WindowSize     int       `json:"window_size"`
	Weighted       bool      `json:"weighted"`
	ItemCount      int       `json:"item_count"`
	FailureCount   int       `json:"failure_count"`
	MeanKappa      float64   `json:"mean_kappa"`
	MeanPk         float64   `json:"mean_pk"`
	MeanWindowDiff float64   `json:"mean_window_diff"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordRun writes a run header and its item scores in one transaction and
// returns the generated run id.
func (db *DB) RecordRun(sourceDir string, opts agreement.Options, summary *agreement.Summary) (string, error) {
	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (
			run_id, source_dir, window_size, weighted, item_count, failure_count,
			mean_kappa, mean_pk, mean_window_diff, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, sourceDir, opts.WindowSize, opts.Weighted, len(summary.Items), len(summary.Failures),
		summary.MeanKappa, summary.MeanPk, summary.MeanWindowDiff, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for _, item := range summary.Items {
		_, err = tx.Exec(
			`INSERT INTO item_scores (run_id, item_id, annotators, kappa, pk, window_diff)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, item.ItemID, item.Annotators, item.Kappa, item.Pk, item.WindowDiff,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert scores for item %s: %w", item.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// Runs returns the most recent runs, newest first.
func (db *DB) Runs(limit int) ([]Run, error) {
	rows, err := db.Query(
		`SELECT run_id, source_dir, window_size, weighted, item_count, failure_count,
			mean_kappa, mean_pk, mean_window_diff, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.RunID, &r.SourceDir, &r.WindowSize, &r.Weighted, &r.ItemCount, &r.FailureCount,
			&r.MeanKappa, &r.MeanPk, &r.MeanWindowDiff, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ItemScores returns the per-item scores stored for one run, in item order.
func (db *DB) ItemScores(runID string) ([]agreement.ItemScores, error) {
	rows, err := db.Query(
		`SELECT item_id, annotators, kappa, pk, window_diff
		 FROM item_scores WHERE run_id = ? ORDER BY item_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []agreement.ItemScores
	for rows.Next() {
		var item agreement.ItemScores
		if err := rows.Scan(&item.ItemID, &item.Annotators, &item.Kappa, &item.Pk, &item.WindowDiff); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
