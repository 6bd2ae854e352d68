package services

import (
	"math"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// Compatibility and alignment results live in [MinScore, MaxScore].
const (
	MinScore = -100
	MaxScore = 100
)

const (
	// highReading marks a strongly held trait or value.
	highReading = 70
	// lowReading marks a weakly held trait.
	lowReading = 30

	preferredTraitReading = 60
	conflictGap           = 50
	alignmentWeight       = 0.3
)

// mirroredTraits are compared for similarity when scoring compatibility.
var mirroredTraits = []entities.Trait{
	entities.TraitFriendliness,
	entities.TraitSociability,
	entities.TraitPlayfulness,
	entities.TraitPatience,
}

type valuePair struct {
	first, second entities.Value
}

// conflictingValues pair each reading with the one it opposes.
var conflictingValues = []valuePair{
	{entities.ValueFreedom, entities.ValueCommunity},
	{entities.ValueTradition, entities.ValueGrowth},
	{entities.ValuePower, entities.ValueHarmony},
	{entities.ValueAchievement, entities.ValueProtection},
}

// clashingIdeals are the strongly opposed pairs that cost alignment and can
// turn an exchange into a clash.
var clashingIdeals = conflictingValues[:3]

// sharedIdeals earn a bonus when both sides hold them strongly.
var sharedIdeals = []entities.Value{
	entities.ValueHonor,
	entities.ValueCommunity,
	entities.ValueHarmony,
}

// CompatibilityScore rates how well a gets along with b from a's side.
// Element and trait preferences are read from a only, so the score is asymmetric.
func CompatibilityScore(a, b entities.Character, elementB entities.Element) int {
	score := 0

	for _, t := range mirroredTraits {
		score += similarity(a.Traits.Reading(t), b.Traits.Reading(t))
	}

	dominanceGap := abs(a.Traits.Dominance - b.Traits.Dominance)
	switch {
	case dominanceGap < lowReading:
		score += 10
	case dominanceGap > highReading:
		score += 15
	}

	aggA, aggB := a.Traits.Aggression(), b.Traits.Aggression()
	switch {
	case aggA < lowReading && aggB < lowReading:
		score += 20
	case aggA > highReading && aggB > highReading:
		score -= 30
	}

	if a.Preferences.Elements.Prefers(elementB) {
		score += 25
	}
	if a.Preferences.Elements.Dislikes(elementB) {
		score -= 30
	}

	for _, t := range a.Preferences.PreferredTraits {
		if b.Traits.Reading(t) > preferredTraitReading {
			score += 10
		}
	}
	for _, t := range a.Preferences.DislikedTraits {
		if b.Traits.Reading(t) > preferredTraitReading {
			score -= 15
		}
	}

	score += roundScaled(ValueAlignment(a.Values, b.Values), alignmentWeight)
	return clampScore(score)
}

// ValueAlignment rates how closely two value profiles agree. Conflicts compare
// a's first reading with b's second, so the result is directional.
func ValueAlignment(a, b entities.ValueProfile) int {
	alignment := 0

	for _, v := range entities.AllValues {
		alignment += similarity(a.Reading(v), b.Reading(v))
	}

	for _, p := range conflictingValues {
		if gap := abs(a.Reading(p.first) - b.Reading(p.second)); gap > conflictGap {
			alignment -= gap / 10
		}
	}

	for _, v := range sharedIdeals {
		if a.Reading(v) > highReading && b.Reading(v) > highReading {
			alignment += 15
		}
	}

	for _, p := range clashingIdeals {
		if a.Reading(p.first) > highReading && b.Reading(p.second) > highReading {
			alignment -= 20
		}
	}

	return clampScore(alignment)
}

// similarity awards up to 10 points for two close readings.
func similarity(a, b int) int {
	return (entities.MaxReading - abs(a-b)) / 10
}

// roundScaled multiplies v by factor and rounds half away from zero.
func roundScaled(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}

func clampScore(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
