// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"taafi-health-tools/internal/models"
)

// timestampLayout keeps created_at fixed width so text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has a single writer; ":memory:" is also per connection.
	db.SetMaxOpenConns(1)

	storage := NewSQLiteStorageFromDB(db)
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// NewSQLiteStorageFromDB wraps an already open handle without touching the schema.
func NewSQLiteStorageFromDB(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS tool_usage (
        id TEXT PRIMARY KEY,
        tool TEXT NOT NULL,
        channel TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_tool_usage_tool ON tool_usage(tool);
    CREATE INDEX IF NOT EXISTS idx_tool_usage_created_at ON tool_usage(created_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) RecordUsage(ctx context.Context, usage *models.ToolUsage) error {
	query := `
        INSERT INTO tool_usage (id, tool, channel, created_at)
        VALUES (?, ?, ?, ?)
    `
	_, err := s.db.ExecContext(ctx, query,
		usage.ID, usage.Tool, string(usage.Channel),
		usage.CreatedAt.UTC().Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("failed to insert tool usage: %w", err)
	}
	return nil
}

// UsageStats returns one row per tool, most used first.
func (s *SQLiteStorage) UsageStats(ctx context.Context) ([]models.ToolUsageStat, error) {
	query := `
        SELECT tool, COUNT(*), MAX(created_at)
        FROM tool_usage
        GROUP BY tool
        ORDER BY COUNT(*) DESC, tool ASC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool usage: %w", err)
	}
	defer rows.Close()

	stats := []models.ToolUsageStat{}
	for rows.Next() {
		var stat models.ToolUsageStat
		var lastUsedStr string

		if err := rows.Scan(&stat.Tool, &stat.Count, &lastUsedStr); err != nil {
			return nil, fmt.Errorf("failed to scan tool usage: %w", err)
		}
		if stat.LastUsed, err = time.Parse(timestampLayout, lastUsedStr); err != nil {
			return nil, fmt.Errorf("failed to parse last_used: %w", err)
		}

		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tool usage: %w", err)
	}

	return stats, nil
}
