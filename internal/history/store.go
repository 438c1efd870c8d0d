package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path and verifies
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records one completed run and returns it with its assigned IDs.
func (s *Store) Append(ctx context.Context, command Command, outputPath string, sources []string, outOfOrder bool) (*Record, error) {
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return nil, fmt.Errorf("marshal sources: %w", err)
	}

	record := &Record{
		RunID:      uuid.NewString(),
		Command:    command,
		OutputPath: outputPath,
		Sources:    append([]string(nil), sources...),
		OutOfOrder: outOfOrder,
		CreatedAt:  time.Now().UTC(),
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, command, output_path, sources_json, out_of_order, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		record.RunID,
		string(record.Command),
		record.OutputPath,
		string(sourcesJSON),
		boolToInt(record.OutOfOrder),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	record.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return record, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, command, output_path, sources_json, out_of_order, created_at
         FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record      Record
			command     string
			sourcesJSON string
			outOfOrder  int
			createdAt   string
		)
		if err := rows.Scan(&record.ID, &record.RunID, &command, &record.OutputPath, &sourcesJSON, &outOfOrder, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		record.Command = Command(command)
		record.OutOfOrder = outOfOrder != 0
		if err := json.Unmarshal([]byte(sourcesJSON), &record.Sources); err != nil {
			return nil, fmt.Errorf("decode sources for run %d: %w", record.ID, err)
		}
		if record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at for run %d: %w", record.ID, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Clear removes every recorded run.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
