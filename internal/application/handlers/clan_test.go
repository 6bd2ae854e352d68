package handlers

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/mocks"
	"github.com/ersonp/dragon-clan/internal/domain/services"
	"github.com/ersonp/dragon-clan/internal/infrastructure/random"
)

func newTestHandler(t *testing.T) (*ClanHandler, *mocks.EventSink) {
	t.Helper()
	sink := mocks.NewEventSink()
	return NewClanHandler(random.New(7), sink), sink
}

// newTestClan creates an empty clan and clears the creation event.
func newTestClan(t *testing.T, names ...string) (*ClanHandler, *mocks.EventSink) {
	t.Helper()
	h, sink := newTestHandler(t)
	_, err := h.CreateClan(t.Context(), 0)
	require.NoError(t, err)
	for _, name := range names {
		_, err := h.AddDragon(t.Context(), name, "earth", 5)
		require.NoError(t, err)
	}
	sink.Reset()
	return h, sink
}

func TestClanHandler_NoClan(t *testing.T) {
	h, sink := newTestHandler(t)
	ctx := t.Context()

	calls := []struct {
		name string
		call func() error
	}{
		{"stats", func() error { _, err := h.Stats(); return err }},
		{"dragon", func() error { _, err := h.Dragon(0); return err }},
		{"add random dragon", func() error { _, err := h.AddRandomDragon(ctx); return err }},
		{"add dragon", func() error { _, err := h.AddDragon(ctx, "Aurora", "fire", 3); return err }},
		{"remove dragon", func() error { _, err := h.RemoveDragon(ctx, 0); return err }},
		{"simulate interaction", func() error { _, err := h.SimulateInteraction(ctx); return err }},
		{"simulate interactions", func() error { _, err := h.SimulateInteractions(ctx, 3); return err }},
		{"interact", func() error { _, err := h.Interact(ctx, 0, 1); return err }},
		{"opinion", func() error { _, err := h.Opinion(0, 1); return err }},
		{"relationship summary", func() error { _, err := h.RelationshipSummary(0, 1); return err }},
		{"relationship info", func() error { _, err := h.RelationshipInfo(0, 1); return err }},
		{"character info", func() error { _, err := h.CharacterInfo(0); return err }},
		{"compatibility", func() error { _, err := h.Compatibility(0, 1); return err }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), entities.ErrNoClan)
		})
	}

	assert.False(t, h.HasClan())
	assert.Empty(t, h.Dragons())
	assert.Empty(t, sink.Events)
}

func TestClanHandler_CreateClan(t *testing.T) {
	h, sink := newTestHandler(t)

	stats, err := h.CreateClan(t.Context(), 4)

	require.NoError(t, err)
	assert.True(t, h.HasClan())
	assert.Equal(t, 4, stats.DragonCount)
	assert.Zero(t, stats.Interactions)
	assert.Zero(t, stats.Relationships)
	assert.Regexp(t, `^The \w+ \w+$`, stats.Name)

	require.Equal(t, []entities.EventKind{entities.EventClanCreated}, sink.Kinds())
	want := map[string]any{"clan_name": stats.Name, "dragon_count": 4}
	if diff := cmp.Diff(want, sink.Events[0].Payload); diff != "" {
		t.Errorf("clan-created payload mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[string]bool)
	for i, d := range h.Dragons() {
		assert.Equal(t, i, d.Index)
		assert.False(t, seen[d.Name], "duplicate name %s", d.Name)
		seen[d.Name] = true
		assert.GreaterOrEqual(t, d.Age, services.MinDragonAge)
		assert.LessOrEqual(t, d.Age, services.MaxDragonAge)
	}
}

func TestClanHandler_ResetClan(t *testing.T) {
	t.Run("without clan creates one", func(t *testing.T) {
		h, sink := newTestHandler(t)

		stats, err := h.ResetClan(t.Context(), 2)

		require.NoError(t, err)
		assert.Equal(t, 2, stats.DragonCount)
		assert.Equal(t, []entities.EventKind{entities.EventClanCreated}, sink.Kinds())
	})

	t.Run("repopulates existing clan", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna")
		_, err := h.SimulateInteractions(t.Context(), 3)
		require.NoError(t, err)
		sink.Reset()

		stats, err := h.ResetClan(t.Context(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, stats.DragonCount)
		assert.Zero(t, stats.Interactions)
		assert.Zero(t, stats.Relationships)
		assert.Equal(t, []entities.EventKind{entities.EventClanReset}, sink.Kinds())
		assert.Equal(t, stats.Name, sink.Events[0].Payload["clan_name"])
	})
}

func TestClanHandler_AddDragon(t *testing.T) {
	t.Run("adds with parsed element", func(t *testing.T) {
		h, sink := newTestClan(t)

		info, err := h.AddDragon(t.Context(), "Aurora", " water ", 7)

		require.NoError(t, err)
		assert.Equal(t, "Aurora", info.Name)
		assert.Equal(t, "Water", info.Element)
		assert.Equal(t, 7, info.Age)
		assert.Zero(t, info.Index)

		last, ok := sink.Last()
		require.True(t, ok)
		want := mocks.EmittedEvent{
			Kind: entities.EventDragonAdded,
			Payload: map[string]any{
				"name":              "Aurora",
				"element":           "Water",
				"age":               7,
				"interaction_style": info.InteractionStyle,
			},
		}
		if diff := cmp.Diff(want, last); diff != "" {
			t.Errorf("dragon-added event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown element falls back to default", func(t *testing.T) {
		h, sink := newTestClan(t)

		info, err := h.AddDragon(t.Context(), "Ember", "plasma", 3)

		require.NoError(t, err)
		assert.Equal(t, entities.DefaultElement.String(), info.Element)
		assert.Equal(t, []entities.EventKind{entities.EventDragonAdded}, sink.Kinds())
	})

	t.Run("duplicate name", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora")

		_, err := h.AddDragon(t.Context(), "Aurora", "fire", 3)

		require.ErrorIs(t, err, entities.ErrDuplicateName)
		assert.Len(t, h.Dragons(), 1)
		last, ok := sink.Last()
		require.True(t, ok)
		assert.Equal(t, entities.EventError, last.Kind)
		assert.Equal(t, "add dragon", last.Payload["operation"])
	})
}

func TestClanHandler_AddRandomDragon(t *testing.T) {
	h, sink := newTestClan(t, "Aurora")

	info, err := h.AddRandomDragon(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 1, info.Index)
	assert.NotEqual(t, "Aurora", info.Name)
	assert.Contains(t, entities.AllElements, entities.Element(info.Element))
	assert.Equal(t, []entities.EventKind{entities.EventDragonAdded}, sink.Kinds())
}

func TestClanHandler_AddElementalDragon(t *testing.T) {
	tests := []struct {
		name    string
		element string
		want    string
	}{
		{name: "known element", element: "ice", want: "Ice"},
		{name: "unknown element", element: "void", want: "Fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sink := newTestClan(t)

			info, err := h.AddElementalDragon(t.Context(), tt.element)

			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Element)
			assert.NotEmpty(t, info.Name)
			assert.Equal(t, []entities.EventKind{entities.EventDragonAdded}, sink.Kinds())
		})
	}

	t.Run("no clan", func(t *testing.T) {
		h, _ := newTestHandler(t)
		_, err := h.AddElementalDragon(t.Context(), "ice")
		require.ErrorIs(t, err, entities.ErrNoClan)
	})
}

func TestClanHandler_RemoveDragon(t *testing.T) {
	t.Run("removes and forgets", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna", "Ember")
		_, err := h.Interact(t.Context(), 0, 1)
		require.NoError(t, err)
		sink.Reset()

		info, err := h.RemoveDragon(t.Context(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Luna", info.Name)
		assert.Len(t, h.Dragons(), 2)
		assert.Equal(t, "Ember", h.Dragons()[1].Name)

		stats, err := h.Stats()
		require.NoError(t, err)
		assert.Zero(t, stats.Relationships)

		want := []mocks.EmittedEvent{{
			Kind:    entities.EventDragonRemoved,
			Payload: map[string]any{"name": "Luna", "index": 1},
		}}
		if diff := cmp.Diff(want, sink.Events); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown index", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora")

		_, err := h.RemoveDragon(t.Context(), 3)

		require.ErrorIs(t, err, entities.ErrUnknownEntity)
		assert.Equal(t, []entities.EventKind{entities.EventError}, sink.Kinds())
	})
}

func TestClanHandler_SimulateInteractions(t *testing.T) {
	t.Run("fewer than two dragons", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora")

		events, err := h.SimulateInteractions(t.Context(), 5)
		require.NoError(t, err)
		assert.Empty(t, events)

		single, err := h.SimulateInteraction(t.Context())
		require.NoError(t, err)
		assert.Nil(t, single)
		assert.Empty(t, sink.Events)
	})

	t.Run("runs requested count", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna", "Ember")

		events, err := h.SimulateInteractions(t.Context(), 6)

		require.NoError(t, err)
		require.Len(t, events, 6)
		for _, e := range events {
			assert.NotEqual(t, e.InitiatorIndex, e.ReceiverIndex)
			assert.NotEmpty(t, e.Description)
			assert.LessOrEqual(t, e.OpinionChange, 30)
			assert.GreaterOrEqual(t, e.OpinionChange, -30)
		}
		assert.Len(t, sink.Events, 6)
		for _, e := range sink.Events {
			assert.Equal(t, entities.EventInteractionSimulated, e.Kind)
		}

		stats, err := h.Stats()
		require.NoError(t, err)
		assert.Equal(t, 6, stats.Interactions)
		assert.Positive(t, stats.Relationships)
	})

	t.Run("single interaction", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna")

		event, err := h.SimulateInteraction(t.Context())

		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, 1, event.InitiatorIndex+event.ReceiverIndex)
		assert.Equal(t, []entities.EventKind{entities.EventInteractionSimulated}, sink.Kinds())
	})
}

func TestClanHandler_Interact(t *testing.T) {
	t.Run("updates both relationships", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna")

		event, err := h.Interact(t.Context(), 0, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, event.InitiatorIndex)
		assert.Equal(t, 1, event.ReceiverIndex)

		received, err := h.RelationshipSummary(1, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, received.InteractionCount)

		opinion, err := h.Opinion(1, 0)
		require.NoError(t, err)
		assert.Equal(t, received.Opinion, opinion)

		sent, err := h.RelationshipSummary(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, sent.InteractionCount)

		info, err := h.RelationshipInfo(1, 0)
		require.NoError(t, err)
		assert.Contains(t, info, "1 interactions")

		last, ok := sink.Last()
		require.True(t, ok)
		assert.Equal(t, "Aurora", last.Payload["initiator"])
		assert.Equal(t, "Luna", last.Payload["receiver"])
		assert.Equal(t, event.OpinionChange, last.Payload["opinion_change"])
	})

	t.Run("same dragon", func(t *testing.T) {
		h, sink := newTestClan(t, "Aurora", "Luna")

		_, err := h.Interact(t.Context(), 1, 1)

		require.ErrorIs(t, err, entities.ErrSameEntity)
		assert.Equal(t, []entities.EventKind{entities.EventError}, sink.Kinds())
	})

	t.Run("unknown index", func(t *testing.T) {
		h, _ := newTestClan(t, "Aurora")

		_, err := h.Interact(t.Context(), 0, 4)

		require.ErrorIs(t, err, entities.ErrUnknownEntity)
	})
}

func TestClanHandler_Queries(t *testing.T) {
	h, _ := newTestClan(t, "Aurora", "Luna")

	t.Run("neutral before any interaction", func(t *testing.T) {
		summary, err := h.RelationshipSummary(0, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.NeutralSummary(), summary)

		info, err := h.RelationshipInfo(0, 1)
		require.NoError(t, err)
		assert.Equal(t, "😐 neutral (0/100, 0 interactions)", info)
	})

	t.Run("character info", func(t *testing.T) {
		sheet, err := h.CharacterInfo(1)
		require.NoError(t, err)
		assert.Contains(t, sheet, "Luna's Details:")
		assert.Contains(t, sheet, "Element: Earth")

		_, err = h.CharacterInfo(2)
		require.ErrorIs(t, err, entities.ErrUnknownEntity)
	})

	t.Run("dragon", func(t *testing.T) {
		info, err := h.Dragon(0)
		require.NoError(t, err)
		assert.Equal(t, "Aurora", info.Name)
	})

	t.Run("compatibility", func(t *testing.T) {
		report, err := h.Compatibility(0, 1)
		require.NoError(t, err)

		dragons := h.clan.Dragons()
		a, b := dragons[0], dragons[1]
		assert.Equal(t, "Aurora", report.From)
		assert.Equal(t, "Luna", report.To)
		assert.Equal(t, services.CompatibilityScore(a.Character, b.Character, b.Element), report.Compatibility)
		assert.Equal(t, services.ValueAlignment(a.Character.Values, b.Character.Values), report.Alignment)
	})
}

func TestClanHandler_SinkFailure(t *testing.T) {
	h, sink := newTestClan(t, "Aurora", "Luna")
	sink.Err = errors.New("journal unavailable")

	_, err := h.AddDragon(t.Context(), "Ember", "fire", 2)
	require.NoError(t, err)

	events, err := h.SimulateInteractions(t.Context(), 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Len(t, sink.Events, 3)
}

func TestClanHandler_NilSink(t *testing.T) {
	h := NewClanHandler(random.New(3), nil)

	_, err := h.CreateClan(t.Context(), 2)
	require.NoError(t, err)

	events, err := h.SimulateInteractions(t.Context(), 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
