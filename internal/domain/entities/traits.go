package entities

// Readings on every trait and value axis live in [MinReading, MaxReading].
const (
	MinReading = 0
	MaxReading = 100
)

// ClampReading saturates v to the valid axis range.
func ClampReading(v int) int {
	if v < MinReading {
		return MinReading
	}
	if v > MaxReading {
		return MaxReading
	}
	return v
}

// Trait identifies a single personality reading.
// Aggression and Patience are two readings of the same stored axis.
type Trait uint8

const (
	TraitFriendliness Trait = iota
	TraitAggression
	TraitSociability
	TraitCuriosity
	TraitPlayfulness
	TraitDominance
	TraitPatience
)

// AllTraits lists every trait reading in display order.
var AllTraits = []Trait{
	TraitFriendliness,
	TraitAggression,
	TraitSociability,
	TraitCuriosity,
	TraitPlayfulness,
	TraitDominance,
	TraitPatience,
}

var traitNames = [...]string{
	TraitFriendliness: "Friendliness",
	TraitAggression:   "Aggression",
	TraitSociability:  "Sociability",
	TraitCuriosity:    "Curiosity",
	TraitPlayfulness:  "Playfulness",
	TraitDominance:    "Dominance",
	TraitPatience:     "Patience",
}

// String returns the display name of the trait.
func (t Trait) String() string {
	if int(t) < len(traitNames) {
		return traitNames[t]
	}
	return "Unknown"
}

// TraitProfile is a dragon's fixed personality.
// AggressionVsPatience stores aggression; patience is its complement.
type TraitProfile struct {
	Friendliness         int `json:"friendliness"`
	Sociability          int `json:"sociability"`
	Curiosity            int `json:"curiosity"`
	Playfulness          int `json:"playfulness"`
	Dominance            int `json:"dominance"`
	AggressionVsPatience int `json:"aggression_vs_patience"`
}

// Aggression returns the stored aggression reading.
func (p TraitProfile) Aggression() int {
	return p.AggressionVsPatience
}

// Patience returns the complement of aggression.
func (p TraitProfile) Patience() int {
	return MaxReading - p.AggressionVsPatience
}

// Reading returns the value of a single trait.
func (p TraitProfile) Reading(t Trait) int {
	switch t {
	case TraitFriendliness:
		return p.Friendliness
	case TraitAggression:
		return p.Aggression()
	case TraitSociability:
		return p.Sociability
	case TraitCuriosity:
		return p.Curiosity
	case TraitPlayfulness:
		return p.Playfulness
	case TraitDominance:
		return p.Dominance
	case TraitPatience:
		return p.Patience()
	default:
		return 0
	}
}

// Adjusted returns a copy with the given reading shifted by delta, saturating at
// the axis bounds. Shifting Patience moves the shared axis the other way.
func (p TraitProfile) Adjusted(t Trait, delta int) TraitProfile {
	switch t {
	case TraitFriendliness:
		p.Friendliness = ClampReading(p.Friendliness + delta)
	case TraitAggression:
		p.AggressionVsPatience = ClampReading(p.AggressionVsPatience + delta)
	case TraitSociability:
		p.Sociability = ClampReading(p.Sociability + delta)
	case TraitCuriosity:
		p.Curiosity = ClampReading(p.Curiosity + delta)
	case TraitPlayfulness:
		p.Playfulness = ClampReading(p.Playfulness + delta)
	case TraitDominance:
		p.Dominance = ClampReading(p.Dominance + delta)
	case TraitPatience:
		p.AggressionVsPatience = ClampReading(p.AggressionVsPatience - delta)
	}
	return p
}

// Clamped returns a copy with every stored axis inside the valid range.
func (p TraitProfile) Clamped() TraitProfile {
	p.Friendliness = ClampReading(p.Friendliness)
	p.Sociability = ClampReading(p.Sociability)
	p.Curiosity = ClampReading(p.Curiosity)
	p.Playfulness = ClampReading(p.Playfulness)
	p.Dominance = ClampReading(p.Dominance)
	p.AggressionVsPatience = ClampReading(p.AggressionVsPatience)
	return p
}

// InteractionStyle summarises how the dragon tends to approach others.
func (p TraitProfile) InteractionStyle() string {
	switch {
	case p.Aggression() > 70:
		return "aggressive"
	case p.Friendliness > 70 && p.Playfulness > 60:
		return "playful"
	case p.Friendliness > 70:
		return "friendly"
	case p.Sociability < 30:
		return "shy"
	case p.Curiosity > 70:
		return "curious"
	default:
		return "serious"
	}
}
