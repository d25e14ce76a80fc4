package service_test

import (
	"context"
	"testing"
	"time"

	"activitylog-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNoteResolvesLogicalDate(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.Notes.Add(context.Background(), &dto.AddNoteRequest{
		Timestamp: time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
		Content:   "late night idea",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", res.LogicalDate, "3am belongs to the previous logical day")
	assert.NotZero(t, res.Id)
}

func TestAddNotePinnedToExplicitDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.Notes.Add(ctx, &dto.AddNoteRequest{
		Timestamp:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Content:     "this belongs to yesterday",
		LogicalDate: "2026-03-09",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", res.LogicalDate)

	summary, err := env.Summary.GetDaySummary(ctx, "2026-03-09")
	require.NoError(t, err)
	require.Len(t, summary.Notes, 1)
	assert.Equal(t, "this belongs to yesterday", summary.Notes[0].Content)
}

func TestAddNoteRejectsBadPinnedDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Notes.Add(context.Background(), &dto.AddNoteRequest{
		Timestamp:   time.Now(),
		Content:     "x",
		LogicalDate: "yesterday",
	})
	require.Error(t, err)
}

func TestListNotesRangeAndPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for day := 8; day <= 12; day++ {
		_, err := env.Notes.Add(ctx, &dto.AddNoteRequest{
			Timestamp: time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC),
			Content:   "note",
		})
		require.NoError(t, err)
	}

	// Range bounds are inclusive; the page is newest first.
	res, err := env.Notes.List(ctx, "2026-03-09", "2026-03-11", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total, "total counts the whole range, not the page")
	require.Len(t, res.Notes, 2)
	assert.True(t, res.Notes[0].Timestamp.After(res.Notes[1].Timestamp))
	assert.Equal(t, 11, res.Notes[0].Timestamp.UTC().Day())

	// Offset pages past the first results.
	res, err = env.Notes.List(ctx, "2026-03-09", "2026-03-11", 2, 2)
	require.NoError(t, err)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, 9, res.Notes[0].Timestamp.UTC().Day())

	// Open bounds cover everything.
	res, err = env.Notes.List(ctx, "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Total)
	assert.Len(t, res.Notes, 5)
}

func TestListNotesRejectsBadRange(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Notes.List(context.Background(), "2026-03-12", "2026-03-09", 0, 0)
	require.Error(t, err)

	_, err = env.Notes.List(context.Background(), "last week", "", 0, 0)
	require.Error(t, err)
}

func TestDailyLogSaveOverwrites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.DailyLogs.Save(ctx, "2026-03-10", &dto.SaveDailyLogRequest{Content: "draft"})
	require.NoError(t, err)

	_, err = env.DailyLogs.Save(ctx, "2026-03-10", &dto.SaveDailyLogRequest{Content: "final"})
	require.NoError(t, err)

	res, err := env.DailyLogs.Get(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "final", res.Content)
}

func TestDailyLogMissingIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.DailyLogs.Get(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", res.LogicalDate)
	assert.Empty(t, res.Content)
}
