package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// HistoryStore keeps the import-run history in a local SQLite file.
type HistoryStore struct {
	db *sql.DB
}

// ImportLogEntry is one recorded import run.
type ImportLogEntry struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	TotalRows    int    `json:"totalRows"`
	AcceptedRows int    `json:"acceptedRows"`
	SkippedRows  int    `json:"skippedRows"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// NewHistoryStore opens (or creates) the history database at dbPath.
func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite works best with a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	h := &HistoryStore{db: db}
	if err := h.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return h, nil
}

func (h *HistoryStore) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := h.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (h *HistoryStore) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

// LogImport records one finished import run and returns its id.
func (h *HistoryStore) LogImport(filename string, totalRows, accepted, skipped int, status, errorMessage string) (int64, error) {
	res, err := h.db.Exec(`
		INSERT INTO import_logs (filename, total_rows, accepted_rows, skipped_rows, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?)
	`, filename, totalRows, accepted, skipped, status, errorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// ListImports returns the most recent import runs, newest first.
func (h *HistoryStore) ListImports(limit int) ([]ImportLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := h.db.Query(`
		SELECT id, filename, total_rows, accepted_rows, skipped_rows, status, error_message, created_at
		FROM import_logs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var entries []ImportLogEntry
	for rows.Next() {
		var e ImportLogEntry
		if err := rows.Scan(&e.ID, &e.Filename, &e.TotalRows, &e.AcceptedRows, &e.SkippedRows, &e.Status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
