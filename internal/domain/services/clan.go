package services

import (
	"fmt"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

// ClanInteraction is an interaction together with the registry positions of
// its participants at the time it ran.
type ClanInteraction struct {
	InitiatorIndex int                   `json:"initiator_index"`
	ReceiverIndex  int                   `json:"receiver_index"`
	Interaction    *entities.Interaction `json:"interaction"`
}

// Clan is an ordered registry of dragons with index-based access.
type Clan struct {
	name         string
	dragons      []*entities.Dragon
	interactions *InteractionService
	rng          ports.RandomSource
}

// NewClan creates an empty clan. rng picks pairs during Simulate.
func NewClan(name string, rng ports.RandomSource) *Clan {
	return &Clan{
		name:         name,
		interactions: NewInteractionService(),
		rng:          rng,
	}
}

// Name returns the clan name.
func (c *Clan) Name() string {
	return c.name
}

// Rename changes the clan name.
func (c *Clan) Rename(name string) {
	c.name = name
}

// Add appends a dragon. Names must be unique within the clan.
func (c *Clan) Add(d *entities.Dragon) error {
	if d == nil {
		return fmt.Errorf("adding dragon: %w", entities.ErrUnknownEntity)
	}
	if c.Has(d.Name) {
		return fmt.Errorf("adding %s: %w", d.Name, entities.ErrDuplicateName)
	}
	c.dragons = append(c.dragons, d)
	return nil
}

// Has reports whether a dragon with the given name belongs to the clan.
func (c *Clan) Has(name string) bool {
	for _, d := range c.dragons {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Remove takes the dragon at index i out of the clan and drops every other
// member's relationship toward it.
func (c *Clan) Remove(i int) (*entities.Dragon, error) {
	d, err := c.Dragon(i)
	if err != nil {
		return nil, err
	}
	c.dragons = append(c.dragons[:i], c.dragons[i+1:]...)
	for _, other := range c.dragons {
		other.Relationships().Forget(d.Name)
	}
	return d, nil
}

// Dragon returns the dragon at index i.
func (c *Clan) Dragon(i int) (*entities.Dragon, error) {
	if i < 0 || i >= len(c.dragons) {
		return nil, fmt.Errorf("index %d: %w", i, entities.ErrUnknownEntity)
	}
	return c.dragons[i], nil
}

// Dragons returns the members in registry order.
func (c *Clan) Dragons() []*entities.Dragon {
	return append([]*entities.Dragon(nil), c.dragons...)
}

// Count returns the number of members.
func (c *Clan) Count() int {
	return len(c.dragons)
}

// Clear removes every member.
func (c *Clan) Clear() {
	c.dragons = nil
}

// Interact runs one exchange initiated by the dragon at i toward the dragon at j.
func (c *Clan) Interact(i, j int) (*entities.Interaction, error) {
	a, err := c.Dragon(i)
	if err != nil {
		return nil, err
	}
	b, err := c.Dragon(j)
	if err != nil {
		return nil, err
	}
	if i == j {
		return nil, fmt.Errorf("index %d: %w", i, entities.ErrSameEntity)
	}
	return c.interactions.Interact(a, b)
}

// Simulate runs up to n interactions between randomly chosen distinct pairs,
// one after another. Clans with fewer than two members produce nothing.
func (c *Clan) Simulate(n int) []ClanInteraction {
	count := len(c.dragons)
	if count < 2 || n <= 0 {
		return nil
	}

	results := make([]ClanInteraction, 0, n)
	for range n {
		i := c.rng.IntN(count)
		j := c.rng.IntN(count - 1)
		if j >= i {
			j++
		}
		interaction, err := c.Interact(i, j)
		if err != nil {
			continue
		}
		results = append(results, ClanInteraction{
			InitiatorIndex: i,
			ReceiverIndex:  j,
			Interaction:    interaction,
		})
	}
	return results
}

// Opinion returns the opinion the dragon at i holds of the dragon at j.
func (c *Clan) Opinion(i, j int) (int, error) {
	a, b, err := c.pair(i, j)
	if err != nil {
		return 0, err
	}
	return a.OpinionOf(b.Name), nil
}

// RelationshipSummary reports how the dragon at i regards the dragon at j.
func (c *Clan) RelationshipSummary(i, j int) (entities.RelationshipSummary, error) {
	a, b, err := c.pair(i, j)
	if err != nil {
		return entities.RelationshipSummary{}, err
	}
	return a.RelationshipSummary(b.Name), nil
}

func (c *Clan) pair(i, j int) (*entities.Dragon, *entities.Dragon, error) {
	a, err := c.Dragon(i)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.Dragon(j)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
