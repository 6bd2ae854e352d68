package services

import (
	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

// Ages assigned to randomly created dragons.
const (
	MinDragonAge = 1
	MaxDragonAge = 15
)

type traitBias struct {
	trait entities.Trait
	delta int
}

type valueBias struct {
	value entities.Value
	delta int
}

type elementBias struct {
	traits []traitBias
	values []valueBias
}

// elementBiases shift freshly drawn axes toward each element's temperament.
var elementBiases = map[entities.Element]elementBias{
	entities.ElementFire: {
		traits: []traitBias{{entities.TraitAggression, 20}, {entities.TraitDominance, 15}},
		values: []valueBias{{entities.ValuePower, 15}, {entities.ValueAchievement, 15}},
	},
	entities.ElementWater: {
		traits: []traitBias{{entities.TraitPatience, 20}, {entities.TraitFriendliness, 15}},
		values: []valueBias{{entities.ValueHarmony, 20}, {entities.ValueProtection, 15}, {entities.ValueWisdom, 10}},
	},
	entities.ElementEarth: {
		traits: []traitBias{{entities.TraitPatience, 25}, {entities.TraitCuriosity, -15}},
		values: []valueBias{{entities.ValueTradition, 25}, {entities.ValueHonor, 15}},
	},
	entities.ElementWind: {
		traits: []traitBias{{entities.TraitCuriosity, 20}, {entities.TraitPlayfulness, 15}},
		values: []valueBias{{entities.ValueFreedom, 25}, {entities.ValueGrowth, 20}},
	},
	entities.ElementLightning: {
		traits: []traitBias{{entities.TraitAggression, 15}, {entities.TraitCuriosity, 20}},
		values: []valueBias{{entities.ValueAchievement, 20}, {entities.ValuePower, 15}},
	},
	entities.ElementIce: {
		traits: []traitBias{{entities.TraitSociability, -20}, {entities.TraitPatience, 25}},
		values: []valueBias{{entities.ValueWisdom, 25}, {entities.ValueHarmony, 15}, {entities.ValueFreedom, 15}},
	},
}

// CharacterGenerator builds characters and dragons from a random source.
type CharacterGenerator struct {
	rng ports.RandomSource
}

// NewCharacterGenerator creates a new CharacterGenerator.
func NewCharacterGenerator(rng ports.RandomSource) *CharacterGenerator {
	return &CharacterGenerator{rng: rng}
}

// axis draws one reading as the mean of two uniform draws over [0,100],
// which centres readings around 50.
func (g *CharacterGenerator) axis() int {
	return (g.rng.IntN(entities.MaxReading+1) + g.rng.IntN(entities.MaxReading+1)) / 2
}

// Generate draws a character. A nil element yields an unbiased profile with
// empty preferences.
func (g *CharacterGenerator) Generate(element *entities.Element) entities.Character {
	traits := entities.TraitProfile{
		Friendliness:         g.axis(),
		Sociability:          g.axis(),
		Curiosity:            g.axis(),
		Playfulness:          g.axis(),
		Dominance:            g.axis(),
		AggressionVsPatience: g.axis(),
	}
	values := entities.ValueProfile{
		Honor:                   g.axis(),
		Wisdom:                  g.axis(),
		FreedomVsCommunity:      g.axis(),
		TraditionVsGrowth:       g.axis(),
		PowerVsHarmony:          g.axis(),
		AchievementVsProtection: g.axis(),
	}

	character := entities.Character{}
	if element != nil {
		bias := elementBiases[*element]
		for _, b := range bias.traits {
			traits = traits.Adjusted(b.trait, b.delta)
		}
		for _, b := range bias.values {
			values = values.Adjusted(b.value, b.delta)
		}
		character.Preferences.Elements = entities.DefaultElementPreferences(*element)
	}
	character.Traits = traits
	character.Values = values
	return character
}

// NewDragon creates a dragon with a character generated for the labelled element.
// An unknown label still yields a dragon of entities.DefaultElement, returned
// together with an error wrapping entities.ErrInvalidElement.
func (g *CharacterGenerator) NewDragon(name, elementLabel string, age int) (*entities.Dragon, error) {
	element, err := entities.ParseElement(elementLabel)
	return entities.NewDragon(name, element, age, g.Generate(&element)), err
}

// RandomElement picks one of the six elements uniformly.
func (g *CharacterGenerator) RandomElement() entities.Element {
	return entities.AllElements[g.rng.IntN(len(entities.AllElements))]
}

// RandomAge picks an age in [MinDragonAge, MaxDragonAge].
func (g *CharacterGenerator) RandomAge() int {
	return MinDragonAge + g.rng.IntN(MaxDragonAge-MinDragonAge+1)
}
