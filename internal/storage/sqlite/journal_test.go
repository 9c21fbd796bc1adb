package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/heraldbot/internal/core"
)

func newTestRepo(t *testing.T) *JournalRepo {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "herald.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewJournalRepo(db)
}

func TestJournalRepo_RecordAndRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, core.DispatchRecord{
		Conversation: "room-1",
		Message:      "herald: ping",
		Outcome:      core.OutcomeCommand,
		Detail:       "ping",
	}))
	require.NoError(t, repo.Record(ctx, core.DispatchRecord{
		Conversation: "room-1",
		Message:      "herald: nope",
		Outcome:      core.OutcomeFallback,
	}))
	require.NoError(t, repo.Record(ctx, core.DispatchRecord{
		Conversation: "room-2",
		Message:      "coffee time",
		Outcome:      core.OutcomeListener,
		Detail:       "coffee",
	}))

	recs, err := repo.Recent(ctx, "room-1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, core.OutcomeFallback, recs[0].Outcome, "newest first")
	assert.Equal(t, core.OutcomeCommand, recs[1].Outcome)
	assert.Equal(t, "ping", recs[1].Detail)
	assert.False(t, recs[0].CreatedAt.IsZero())
}

func TestJournalRepo_RecentHonorsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, core.DispatchRecord{
			Conversation: "room-1",
			Message:      "hello",
			Outcome:      core.OutcomeIgnored,
		}))
	}

	recs, err := repo.Recent(ctx, "room-1", 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestJournalRepo_RecentEmptyConversation(t *testing.T) {
	repo := newTestRepo(t)

	recs, err := repo.Recent(context.Background(), "room-9", 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
