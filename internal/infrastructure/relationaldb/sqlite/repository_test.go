package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

var _ ports.EventJournal = (*Repository)(nil)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(t.Context())
	require.NoError(t, err)

	return repo
}

// steppedClock makes timeNow advance one second per call.
func steppedClock(t *testing.T) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	orig := timeNow
	timeNow = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	t.Cleanup(func() { timeNow = orig })
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	for _, table := range []string{"runs", "events"} {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Should not error when called again
	require.NoError(t, repo.EnsureSchema(t.Context()))
}

func TestRepository_EmitAndList(t *testing.T) {
	steppedClock(t)
	repo := setupTestRepo(t)
	ctx := t.Context()

	require.NoError(t, repo.Emit(ctx, entities.EventClanCreated, map[string]any{"clan_name": "The Iron Wing", "dragons": 2}))
	require.NoError(t, repo.Emit(ctx, entities.EventDragonAdded, map[string]any{"name": "Aurora"}))
	require.NoError(t, repo.Emit(ctx, entities.EventClanReset, nil))

	all, err := repo.List(ctx, ports.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	kinds := []entities.EventKind{all[0].Kind, all[1].Kind, all[2].Kind}
	assert.Equal(t, []entities.EventKind{entities.EventClanReset, entities.EventDragonAdded, entities.EventClanCreated}, kinds)

	want := entities.Event{
		Kind: entities.EventClanCreated,
		// JSON numbers decode as float64
		Payload:   map[string]any{"clan_name": "The Iron Wing", "dragons": float64(2)},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC),
	}
	if diff := cmp.Diff(want, all[2], cmpopts.IgnoreFields(entities.Event{}, "ID"), cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
		t.Errorf("clan-created event mismatch (-want +got):\n%s", diff)
	}
	assert.NotEmpty(t, all[2].ID)
	assert.Nil(t, all[0].Payload)

	limited, err := repo.List(ctx, ports.EventFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, entities.EventClanReset, limited[0].Kind)

	added, err := repo.List(ctx, ports.EventFilter{Kind: entities.EventDragonAdded})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "Aurora", added[0].Payload["name"])
}

func TestRepository_Count(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := t.Context()

	for range 3 {
		require.NoError(t, repo.Emit(ctx, entities.EventInteractionSimulated, nil))
	}
	require.NoError(t, repo.Emit(ctx, entities.EventError, map[string]any{"message": "boom"}))

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	interactions, err := repo.Count(ctx, entities.EventInteractionSimulated)
	require.NoError(t, err)
	assert.Equal(t, 3, interactions)
}

func TestRepository_Runs(t *testing.T) {
	steppedClock(t)
	repo := setupTestRepo(t)
	ctx := t.Context()

	require.NoError(t, repo.Emit(ctx, entities.EventClanCreated, nil))
	assert.Empty(t, repo.RunID())

	first, err := repo.StartRun(ctx, "The Iron Wing", 42)
	require.NoError(t, err)
	require.NoError(t, repo.Emit(ctx, entities.EventClanCreated, nil))
	require.NoError(t, repo.Emit(ctx, entities.EventDragonAdded, nil))

	second, err := repo.StartRun(ctx, "The Frozen Keep", 1<<63+5)
	require.NoError(t, err)
	require.NoError(t, repo.Emit(ctx, entities.EventClanCreated, nil))
	assert.Equal(t, second, repo.RunID())

	runs, err := repo.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, uint64(1<<63+5), runs[0].Seed)
	assert.Equal(t, 1, runs[0].Events)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, "The Iron Wing", runs[1].ClanName)
	assert.Equal(t, 2, runs[1].Events)

	events, err := repo.List(ctx, ports.EventFilter{RunID: first})
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, first, e.RunID)
	}

	byPrefix, err := repo.List(ctx, ports.EventFilter{RunID: first[:8]})
	require.NoError(t, err)
	assert.Len(t, byPrefix, 2)

	latest, err := repo.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, second, latest[0].ID)
}

func TestRepository_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(t.Context()))
	require.NoError(t, repo.Emit(t.Context(), entities.EventDragonRemoved, map[string]any{"name": "Luna"}))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, path, reopened.Path())
	count, err := reopened.Count(t.Context(), entities.EventDragonRemoved)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
