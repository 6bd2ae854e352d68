package entities

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxEnergy   = 100
	restEnergy  = 20
	happyAbove  = 80
	moodContent = "content"
	moodHappy   = "happy"
)

// Dragon is a simulated character. Its element and character never change;
// only its relationships (through interactions) and energy/mood (through rest) do.
type Dragon struct {
	Name      string    `json:"name"`
	Element   Element   `json:"element"`
	Age       int       `json:"age"`
	Energy    int       `json:"energy"`
	Mood      string    `json:"mood"`
	Character Character `json:"character"`

	relationships *Ledger
}

// NewDragon creates a dragon with a pre-built character and an empty ledger.
func NewDragon(name string, element Element, age int, character Character) *Dragon {
	return &Dragon{
		Name:          name,
		Element:       element,
		Age:           age,
		Energy:        maxEnergy,
		Mood:          moodContent,
		Character:     character,
		relationships: NewLedger(),
	}
}

// Relationships exposes the dragon's ledger.
func (d *Dragon) Relationships() *Ledger {
	if d.relationships == nil {
		d.relationships = NewLedger()
	}
	return d.relationships
}

// OpinionOf returns this dragon's opinion of other, 0 if they have never interacted.
func (d *Dragon) OpinionOf(other string) int {
	return d.Relationships().Opinion(other)
}

// RelationshipSummary reports this dragon's view of other, neutral if absent.
func (d *Dragon) RelationshipSummary(other string) RelationshipSummary {
	if r := d.Relationships().Get(other); r != nil {
		return r.Summary()
	}
	return NeutralSummary()
}

// InteractionStyle returns the dragon's interaction style.
func (d *Dragon) InteractionStyle() string {
	return d.Character.InteractionStyle()
}

// Rest restores energy and cheers the dragon up once it is well rested.
func (d *Dragon) Rest() {
	d.Energy += restEnergy
	if d.Energy > maxEnergy {
		d.Energy = maxEnergy
	}
	if d.Energy > happyAbove {
		d.Mood = moodHappy
	}
}

// Info returns a one-line description.
func (d *Dragon) Info() string {
	return fmt.Sprintf("%s - %s Dragon, Age: %d, Energy: %d%%, Mood: %s, Style: %s",
		d.Name, d.Element, d.Age, d.Energy, d.Mood, d.InteractionStyle())
}

type namedReading struct {
	name  string
	score int
}

// CharacterSheet returns a multi-line description with traits and values sorted
// from strongest to weakest.
func (d *Dragon) CharacterSheet() string {
	traits := make([]namedReading, 0, len(AllTraits))
	for _, t := range AllTraits {
		traits = append(traits, namedReading{name: t.String(), score: d.Character.Traits.Reading(t)})
	}
	values := make([]namedReading, 0, len(AllValues))
	for _, v := range AllValues {
		values = append(values, namedReading{name: v.String(), score: d.Character.Values.Reading(v)})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s's Details:\n", d.Name)
	fmt.Fprintf(&b, "  Element: %s\n  Age: %d\n  Energy: %d%%\n  Mood: %s\n", d.Element, d.Age, d.Energy, d.Mood)
	fmt.Fprintf(&b, "  Style: %s\n\n  Traits:\n", d.InteractionStyle())
	writeReadings(&b, traits)
	b.WriteString("\n  Values:\n")
	writeReadings(&b, values)
	return b.String()
}

func writeReadings(b *strings.Builder, readings []namedReading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].score > readings[j].score
	})
	for _, r := range readings {
		fmt.Fprintf(b, "    %s: %d/100\n", r.name, r.score)
	}
}
