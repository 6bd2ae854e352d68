package services

import (
	"math/rand/v2"
	"testing"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClan(t *testing.T, dragons ...*entities.Dragon) *Clan {
	t.Helper()
	clan := NewClan("The Test Clan", rand.New(rand.NewPCG(42, 42)))
	for _, d := range dragons {
		require.NoError(t, clan.Add(d))
	}
	return clan
}

func TestClan_Add(t *testing.T) {
	clan := newTestClan(t, aurora())

	err := clan.Add(entities.NewDragon("Aurora", entities.ElementFire, 1, flatCharacter(50)))
	assert.ErrorIs(t, err, entities.ErrDuplicateName)
	assert.Equal(t, 1, clan.Count())

	assert.ErrorIs(t, clan.Add(nil), entities.ErrUnknownEntity)
	assert.True(t, clan.Has("Aurora"))
	assert.False(t, clan.Has("Luna"))
}

func TestClan_Dragon_UnknownIndex(t *testing.T) {
	clan := newTestClan(t, aurora(), luna())

	for _, i := range []int{-1, 2, 10} {
		_, err := clan.Dragon(i)
		assert.ErrorIs(t, err, entities.ErrUnknownEntity, "index %d", i)
	}

	d, err := clan.Dragon(1)
	require.NoError(t, err)
	assert.Equal(t, "Luna", d.Name)
}

func TestClan_Interact(t *testing.T) {
	clan := newTestClan(t, aurora(), luna())

	_, err := clan.Interact(0, 0)
	assert.ErrorIs(t, err, entities.ErrSameEntity)

	_, err = clan.Interact(0, 5)
	assert.ErrorIs(t, err, entities.ErrUnknownEntity)

	opinion, err := clan.Opinion(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, opinion)

	result, err := clan.Interact(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Aurora", result.Initiator)

	opinion, err = clan.Opinion(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, opinion)

	summary, err := clan.RelationshipSummary(1, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.RelationshipSummary{Status: "😐", Description: "neutral", Opinion: 15, InteractionCount: 1}, summary)

	_, err = clan.RelationshipSummary(3, 0)
	assert.ErrorIs(t, err, entities.ErrUnknownEntity)
}

func TestClan_RelationshipSummary_NeverInteracted(t *testing.T) {
	clan := newTestClan(t, aurora(), luna())

	summary, err := clan.RelationshipSummary(0, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.NeutralSummary(), summary)
	assert.Equal(t, "😐 neutral (0/100, 0 interactions)", summary.String())
}

func TestClan_Simulate(t *testing.T) {
	t.Run("needs two dragons", func(t *testing.T) {
		assert.Empty(t, newTestClan(t).Simulate(5))
		assert.Empty(t, newTestClan(t, aurora()).Simulate(5))
	})

	t.Run("runs distinct pairs in order", func(t *testing.T) {
		clan := newTestClan(t,
			aurora(), luna(),
			flatDragon("Cinder", entities.ElementFire, 50),
			flatDragon("Tide", entities.ElementWater, 50),
		)

		results := clan.Simulate(40)
		require.Len(t, results, 40)

		total := 0
		for _, r := range results {
			assert.NotEqual(t, r.InitiatorIndex, r.ReceiverIndex)
			a, _ := clan.Dragon(r.InitiatorIndex)
			b, _ := clan.Dragon(r.ReceiverIndex)
			assert.Equal(t, a.Name, r.Interaction.Initiator)
			assert.Equal(t, b.Name, r.Interaction.Receiver)
		}
		for _, d := range clan.Dragons() {
			for _, target := range d.Relationships().Targets() {
				rel := d.Relationships().Get(target)
				total += rel.InteractionCount
				assert.GreaterOrEqual(t, rel.Opinion, entities.MinOpinion)
				assert.LessOrEqual(t, rel.Opinion, entities.MaxOpinion)
			}
		}
		// every interaction records once on each side
		assert.Equal(t, 80, total)
	})

	t.Run("receiver index skips the initiator", func(t *testing.T) {
		clan := NewClan("Scripted", mocks.NewRandomSource(1, 1, 0, 0))
		require.NoError(t, clan.Add(aurora()))
		require.NoError(t, clan.Add(luna()))
		require.NoError(t, clan.Add(flatDragon("Cinder", entities.ElementFire, 50)))

		results := clan.Simulate(2)
		require.Len(t, results, 2)
		assert.Equal(t, 1, results[0].InitiatorIndex)
		assert.Equal(t, 2, results[0].ReceiverIndex)
		assert.Equal(t, 0, results[1].InitiatorIndex)
		assert.Equal(t, 1, results[1].ReceiverIndex)
	})
}

func TestClan_Remove(t *testing.T) {
	clan := newTestClan(t, aurora(), luna(), flatDragon("Cinder", entities.ElementFire, 50))

	_, err := clan.Interact(0, 1)
	require.NoError(t, err)
	_, err = clan.Interact(2, 1)
	require.NoError(t, err)

	removed, err := clan.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "Luna", removed.Name)
	assert.Equal(t, 2, clan.Count())

	for _, d := range clan.Dragons() {
		assert.Nil(t, d.Relationships().Get("Luna"), d.Name)
	}

	_, err = clan.Remove(7)
	assert.ErrorIs(t, err, entities.ErrUnknownEntity)
}

func TestClan_ClearAndRename(t *testing.T) {
	clan := newTestClan(t, aurora(), luna())

	clan.Rename("The Frozen Wing")
	clan.Clear()

	assert.Equal(t, "The Frozen Wing", clan.Name())
	assert.Equal(t, 0, clan.Count())
	assert.Empty(t, clan.Dragons())
}
