package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/urbancomply/urbancomply/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		id TEXT PRIMARY KEY,
		input_file TEXT NOT NULL,
		status TEXT NOT NULL,
		total_errors INTEGER NOT NULL,
		total_warnings INTEGER NOT NULL,
		rows_processed INTEGER NOT NULL,
		report_path TEXT,
		created_at TEXT NOT NULL,
		published INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_runs_input_file ON validation_runs(input_file);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON validation_runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_published ON validation_runs(published);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertRun records a validation run
func (db *DB) InsertRun(run *models.Run) error {
	query := `
	INSERT INTO validation_runs (id, input_file, status, total_errors, total_warnings, rows_processed, report_path, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := db.conn.Exec(query, run.ID, run.InputFile, run.Status,
		run.TotalErrors, run.TotalWarnings, run.RowsProcessed,
		run.ReportPath, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting validation run: %w", err)
	}

	return nil
}

// GetRun retrieves a validation run by id
func (db *DB) GetRun(id string) (*models.Run, error) {
	query := `
	SELECT id, input_file, status, total_errors, total_warnings, rows_processed, report_path, created_at, published
	FROM validation_runs
	WHERE id = ?
	`

	row := db.conn.QueryRow(query, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying validation run: %w", err)
	}

	return run, nil
}

// ListRuns retrieves the most recent validation runs, newest first.
// A limit of 0 means no limit.
func (db *DB) ListRuns(limit int) ([]models.Run, error) {
	query := `
	SELECT id, input_file, status, total_errors, total_warnings, rows_processed, report_path, created_at, published
	FROM validation_runs
	ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying validation runs: %w", err)
	}
	defer rows.Close()

	return collectRuns(rows)
}

// ListUnpublishedRuns retrieves all runs not yet published, newest first
func (db *DB) ListUnpublishedRuns() ([]models.Run, error) {
	query := `
	SELECT id, input_file, status, total_errors, total_warnings, rows_processed, report_path, created_at, published
	FROM validation_runs
	WHERE published = 0
	ORDER BY created_at DESC
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying unpublished runs: %w", err)
	}
	defer rows.Close()

	return collectRuns(rows)
}

// MarkPublished marks a validation run as published
func (db *DB) MarkPublished(id string) error {
	query := `UPDATE validation_runs SET published = 1 WHERE id = ?`
	_, err := db.conn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("marking run as published: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*models.Run, error) {
	var run models.Run
	var reportPath sql.NullString
	var createdAt string
	var published int

	err := row.Scan(&run.ID, &run.InputFile, &run.Status, &run.TotalErrors,
		&run.TotalWarnings, &run.RowsProcessed, &reportPath, &createdAt, &published)
	if err != nil {
		return nil, err
	}

	if reportPath.Valid {
		run.ReportPath = reportPath.String
	}
	run.Published = published != 0

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &run, nil
}

func collectRuns(rows *sql.Rows) ([]models.Run, error) {
	var results []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, *run)
	}
	return results, rows.Err()
}
