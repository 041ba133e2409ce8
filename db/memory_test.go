package db

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-suraksha/types"
)

func reportInput(reportType string) types.CommunityReportCreate {
	return types.CommunityReportCreate{
		ReporterName: "Asha",
		Location:     "Harbour Ward",
		ReportType:   reportType,
		Description:  "Water entering ground floors near the fish market.",
		Severity:     "high",
	}
}

func TestMemoryStoreStatusChecks(t *testing.T) {
	frozen := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(frozen)
	store := NewMemoryStore(clock)
	ctx := context.Background()

	created, err := store.CreateStatusCheck(ctx, "mobile-app")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mobile-app", created.ClientName)
	assert.Equal(t, frozen, created.Timestamp)

	second, err := store.CreateStatusCheck(ctx, "web-app")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)

	checks, err := store.ListStatusChecks(ctx)
	require.NoError(t, err)
	assert.Len(t, checks, 2)
}

func TestMemoryStoreCommunityReports(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)
	ctx := context.Background()

	t.Run("create defaults", func(t *testing.T) {
		created, err := store.CreateCommunityReport(ctx, reportInput("flooding"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "pending", created.Status)
		assert.Nil(t, created.Coordinates)

		fetched, err := store.GetCommunityReport(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Timestamp, fetched.Timestamp)
	})

	t.Run("get missing id is ErrNotFound", func(t *testing.T) {
		_, err := store.GetCommunityReport(ctx, "never-created")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list sorts newest first and filters", func(t *testing.T) {
		clock.Advance(time.Minute)
		mid, err := store.CreateCommunityReport(ctx, reportInput("fire"))
		require.NoError(t, err)
		clock.Advance(time.Minute)
		newest, err := store.CreateCommunityReport(ctx, reportInput("flooding"))
		require.NoError(t, err)

		all, err := store.ListCommunityReports(ctx, "", "", 50)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, newest.ID, all[0].ID)
		assert.Equal(t, mid.ID, all[1].ID)

		fires, err := store.ListCommunityReports(ctx, "", "fire", 50)
		require.NoError(t, err)
		require.Len(t, fires, 1)
		assert.Equal(t, mid.ID, fires[0].ID)

		pending, err := store.ListCommunityReports(ctx, "pending", "", 50)
		require.NoError(t, err)
		assert.Len(t, pending, 3)

		resolved, err := store.ListCommunityReports(ctx, "resolved", "", 50)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("limit truncates after sorting", func(t *testing.T) {
		got, err := store.ListCommunityReports(ctx, "", "", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestTimestampRoundTrip(t *testing.T) {
	// The stored string format must reproduce the same instant on read.
	instant := time.Date(2025, 6, 10, 9, 30, 12, 345678900, time.UTC)

	encoded := instant.Format(TimeFormat)
	decoded, err := parseTimestamp(encoded)
	require.NoError(t, err)
	assert.True(t, instant.Equal(decoded))

	_, err = parseTimestamp("not-a-timestamp")
	assert.Error(t, err)
}
