package entities

import (
	"fmt"
	"math"
)

// Opinions live in [MinOpinion, MaxOpinion].
const (
	MinOpinion = -100
	MaxOpinion = 100
)

// maxDecayFactor caps how much a single interaction can move an opinion.
const maxDecayFactor = 0.5

// ClampOpinion saturates v to the valid opinion range.
func ClampOpinion(v int) int {
	if v < MinOpinion {
		return MinOpinion
	}
	if v > MaxOpinion {
		return MaxOpinion
	}
	return v
}

// DecayFactor returns the weight given to a new interaction after count prior ones.
// It stays at the 0.5 ceiling for the first ten interactions and then shrinks
// hyperbolically.
func DecayFactor(count int) float64 {
	if count < 0 {
		count = 0
	}
	return math.Min(10/float64(count+10), maxDecayFactor)
}

// NextOpinion blends the prior opinion with prior+delta using the decay factor
// for count prior interactions, rounding half away from zero and clamping.
func NextOpinion(prior, delta, count int) int {
	decay := DecayFactor(count)
	interactionValue := float64(prior + delta)
	blended := float64(prior)*(1-decay) + interactionValue*decay
	return ClampOpinion(int(math.Round(blended)))
}

// Relationship is one dragon's directed opinion of another.
type Relationship struct {
	Target           string `json:"target"`
	Opinion          int    `json:"opinion"`
	InteractionCount int    `json:"interaction_count"`
	LastInteraction  string `json:"last_interaction,omitempty"`
}

// NewRelationship returns a neutral relationship toward target.
func NewRelationship(target string) *Relationship {
	return &Relationship{Target: target}
}

// Record applies one interaction's opinion delta and returns the new opinion.
func (r *Relationship) Record(delta int, description string) int {
	r.Opinion = NextOpinion(r.Opinion, delta, r.InteractionCount)
	r.InteractionCount++
	r.LastInteraction = description
	return r.Opinion
}

// Description returns the textual band for the current opinion.
func (r *Relationship) Description() string {
	return DescribeOpinion(r.Opinion)
}

// Status returns the icon for the current opinion.
func (r *Relationship) Status() string {
	return OpinionStatus(r.Opinion)
}

// Summary returns a read-only snapshot of the relationship.
func (r *Relationship) Summary() RelationshipSummary {
	return RelationshipSummary{
		Status:           r.Status(),
		Description:      r.Description(),
		Opinion:          r.Opinion,
		InteractionCount: r.InteractionCount,
	}
}

type opinionBand struct {
	min         int
	description string
	status      string
}

// opinionBands are evaluated top-down; each lower bound is inclusive.
var opinionBands = []opinionBand{
	{min: 80, description: "close friends", status: "❤️"},
	{min: 50, description: "friends", status: "😊"},
	{min: 20, description: "friendly", status: "🙂"},
	{min: -20, description: "neutral", status: "😐"},
	{min: -50, description: "distant", status: "😒"},
	{min: -80, description: "unfriendly", status: "😠"},
}

var rivalsBand = opinionBand{description: "rivals", status: "💢"}

func bandFor(opinion int) opinionBand {
	for _, b := range opinionBands {
		if opinion >= b.min {
			return b
		}
	}
	return rivalsBand
}

// DescribeOpinion maps an opinion to its relationship description.
func DescribeOpinion(opinion int) string {
	return bandFor(opinion).description
}

// OpinionStatus maps an opinion to its status icon.
func OpinionStatus(opinion int) string {
	return bandFor(opinion).status
}

// RelationshipSummary is the caller-facing view of a relationship.
type RelationshipSummary struct {
	Status           string `json:"status"`
	Description      string `json:"description"`
	Opinion          int    `json:"opinion"`
	InteractionCount int    `json:"interaction_count"`
}

// NeutralSummary is reported for pairs that have never interacted.
func NeutralSummary() RelationshipSummary {
	return RelationshipSummary{
		Status:      OpinionStatus(0),
		Description: DescribeOpinion(0),
	}
}

// String formats the summary as "<icon> <description> (<opinion>/100, <n> interactions)".
func (s RelationshipSummary) String() string {
	return fmt.Sprintf("%s %s (%d/100, %d interactions)", s.Status, s.Description, s.Opinion, s.InteractionCount)
}
