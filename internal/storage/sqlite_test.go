package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taafi-health-tools/internal/models"
)

func newMemoryStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	stor, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { stor.Close() })
	return stor
}

func TestSQLiteStorage_RecordAndStats(t *testing.T) {
	stor := newMemoryStorage(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	usages := []*models.ToolUsage{
		{ID: "u1", Tool: "calculate_bmi", Channel: models.ChannelREST, CreatedAt: base},
		{ID: "u2", Tool: "calculate_water", Channel: models.ChannelMCP, CreatedAt: base.Add(time.Minute)},
		{ID: "u3", Tool: "calculate_bmi", Channel: models.ChannelMCP, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, u := range usages {
		require.NoError(t, stor.RecordUsage(ctx, u))
	}

	stats, err := stor.UsageStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "calculate_bmi", stats[0].Tool)
	assert.Equal(t, 2, stats[0].Count)
	assert.True(t, stats[0].LastUsed.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, "calculate_water", stats[1].Tool)
	assert.Equal(t, 1, stats[1].Count)
}

func TestSQLiteStorage_LastUsedSubSecondOrdering(t *testing.T) {
	stor := newMemoryStorage(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stor.RecordUsage(ctx, &models.ToolUsage{
		ID: "u1", Tool: "calculate_bmi", Channel: models.ChannelREST, CreatedAt: base.Add(500 * time.Millisecond),
	}))
	require.NoError(t, stor.RecordUsage(ctx, &models.ToolUsage{
		ID: "u2", Tool: "calculate_bmi", Channel: models.ChannelREST, CreatedAt: base.Add(510 * time.Millisecond),
	}))
	require.NoError(t, stor.RecordUsage(ctx, &models.ToolUsage{
		ID: "u3", Tool: "calculate_water", Channel: models.ChannelREST, CreatedAt: base,
	}))

	stats, err := stor.UsageStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.True(t, stats[0].LastUsed.Equal(base.Add(510*time.Millisecond)), stats[0].LastUsed)
	assert.True(t, stats[1].LastUsed.Equal(base), stats[1].LastUsed)
}

func TestSQLiteStorage_StoresFixedWidthTimestamps(t *testing.T) {
	stor := newMemoryStorage(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, at := range []time.Time{base, base.Add(time.Millisecond), base.Add(123456789)} {
		require.NoError(t, stor.RecordUsage(ctx, &models.ToolUsage{
			ID: fmt.Sprintf("u%d", i), Tool: "calculate_bmi", Channel: models.ChannelMCP, CreatedAt: at,
		}))
	}

	rows, err := stor.db.QueryContext(ctx, `SELECT DISTINCT length(created_at) FROM tool_usage`)
	require.NoError(t, err)
	defer rows.Close()
	var widths []int
	for rows.Next() {
		var w int
		require.NoError(t, rows.Scan(&w))
		widths = append(widths, w)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{len(base.Format(timestampLayout))}, widths)
}

func TestSQLiteStorage_EmptyStats(t *testing.T) {
	stor := newMemoryStorage(t)

	stats, err := stor.UsageStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.NotNil(t, stats)
}

func TestSQLiteStorage_DuplicateIDFails(t *testing.T) {
	stor := newMemoryStorage(t)
	ctx := context.Background()
	u := &models.ToolUsage{ID: "dup", Tool: "calculate_bmi", Channel: models.ChannelREST, CreatedAt: time.Now()}

	require.NoError(t, stor.RecordUsage(ctx, u))
	assert.Error(t, stor.RecordUsage(ctx, u))
}

func TestSQLiteStorage_RecordUsageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stor := NewSQLiteStorageFromDB(db)
	mock.ExpectExec(`INSERT INTO tool_usage`).
		WithArgs("u1", "calculate_bmi", "rest", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err = stor.RecordUsage(context.Background(), &models.ToolUsage{
		ID: "u1", Tool: "calculate_bmi", Channel: models.ChannelREST, CreatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_UsageStatsBadTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stor := NewSQLiteStorageFromDB(db)
	mock.ExpectQuery(`SELECT tool, COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"tool", "count", "last_used"}).
			AddRow("calculate_bmi", 3, "yesterday"))

	_, err = stor.UsageStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_used")
	assert.NoError(t, mock.ExpectationsWereMet())
}
