package entities

// Preferences steer how a dragon scores others beyond plain similarity.
type Preferences struct {
	Elements        ElementPreferences `json:"-"`
	PreferredTraits []Trait            `json:"preferred_traits,omitempty"`
	DislikedTraits  []Trait            `json:"disliked_traits,omitempty"`
}

// Character bundles the immutable personality data of a dragon.
type Character struct {
	Traits      TraitProfile `json:"traits"`
	Values      ValueProfile `json:"values"`
	Preferences Preferences  `json:"preferences"`
}

// InteractionStyle is shorthand for Traits.InteractionStyle.
func (c Character) InteractionStyle() string {
	return c.Traits.InteractionStyle()
}
