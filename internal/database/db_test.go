package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbancomply/urbancomply/pkg/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testRun(input, status string) *models.Run {
	return &models.Run{
		ID:            uuid.New().String(),
		InputFile:     input,
		Status:        status,
		TotalErrors:   2,
		TotalWarnings: 1,
		RowsProcessed: 12,
		ReportPath:    "report.json",
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestInsertAndGetRun(t *testing.T) {
	db := testDB(t)

	run := testRun("building_a.csv", "FAIL")
	require.NoError(t, db.InsertRun(run))

	got, err := db.GetRun(run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.InputFile, got.InputFile)
	assert.Equal(t, run.Status, got.Status)
	assert.Equal(t, run.TotalErrors, got.TotalErrors)
	assert.Equal(t, run.TotalWarnings, got.TotalWarnings)
	assert.Equal(t, run.RowsProcessed, got.RowsProcessed)
	assert.Equal(t, run.ReportPath, got.ReportPath)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.Published)
}

func TestGetRun_NotFound(t *testing.T) {
	db := testDB(t)

	got, err := db.GetRun(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListRuns(t *testing.T) {
	db := testDB(t)

	older := testRun("a.csv", "PASS")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	newer := testRun("b.csv", "FAIL")

	require.NoError(t, db.InsertRun(older))
	require.NoError(t, db.InsertRun(newer))

	runs, err := db.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b.csv", runs[0].InputFile)
	assert.Equal(t, "a.csv", runs[1].InputFile)

	limited, err := db.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "b.csv", limited[0].InputFile)
}

func TestUnpublishedAndMarkPublished(t *testing.T) {
	db := testDB(t)

	run := testRun("a.csv", "PASS")
	require.NoError(t, db.InsertRun(run))

	unpublished, err := db.ListUnpublishedRuns()
	require.NoError(t, err)
	require.Len(t, unpublished, 1)

	require.NoError(t, db.MarkPublished(run.ID))

	unpublished, err = db.ListUnpublishedRuns()
	require.NoError(t, err)
	assert.Empty(t, unpublished)

	got, err := db.GetRun(run.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
}
