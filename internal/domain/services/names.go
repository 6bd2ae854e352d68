package services

import (
	"fmt"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

const (
	elementNameChance = 0.7
	middleChance      = 0.5
	// maxNameAttempts bounds the unique-name search.
	maxNameAttempts = 1000
)

var (
	namePrefixes = []string{
		"Aer", "Ign", "Aqu", "Terr", "Zeph", "Cryo", "Pyro", "Nyx", "Lux", "Umbr",
		"Dra", "Vor", "Kyr", "Zar", "Xen", "Nex", "Rex", "Vex", "Zor", "Kor",
		"Thal", "Mal", "Val", "Gal", "Kal", "Tal", "Sal", "Dal", "Fal", "Hal",
	}
	nameMiddles = []string{
		"on", "en", "in", "an", "un", "ar", "or", "ir", "ur", "er",
		"ath", "eth", "ith", "oth", "uth", "ach", "ech", "ich", "och", "uch",
		"ra", "la", "na", "ma", "ta", "sa", "da", "fa", "ga", "ka",
	}
	nameSuffixes = []string{
		"is", "us", "as", "os", "es", "ix", "ax", "ox", "ex", "yx",
		"ion", "eon", "ian", "ean", "oan", "urn", "orn", "arn", "ern",
		"th", "nth", "rth", "lth", "mth", "dra", "ra", "la", "na", "ma",
	}
)

type elementNames struct {
	prefixes []string
	suffixes []string
}

var elementNameTable = map[entities.Element]elementNames{
	entities.ElementFire: {
		prefixes: []string{"Ign", "Pyro", "Flar", "Blaz", "Ember", "Scorch", "Infer", "Cind"},
		suffixes: []string{"is", "ion", "ra", "th", "ix", "ax"},
	},
	entities.ElementWater: {
		prefixes: []string{"Aqu", "Hydr", "Mar", "Tid", "Flow", "Riv", "Oce", "Wav"},
		suffixes: []string{"a", "ia", "is", "us", "an", "en"},
	},
	entities.ElementEarth: {
		prefixes: []string{"Terr", "Ston", "Rock", "Cryst", "Gran", "Clay", "Mud", "Grav"},
		suffixes: []string{"a", "is", "us", "an", "on", "th"},
	},
	entities.ElementWind: {
		prefixes: []string{"Aer", "Zeph", "Gust", "Breez", "Storm", "Temp", "Cycl", "Whirl"},
		suffixes: []string{"a", "is", "us", "on", "an", "ix"},
	},
	entities.ElementLightning: {
		prefixes: []string{"Volt", "Thund", "Bolt", "Spark", "Flash", "Strik", "Shock", "Electr"},
		suffixes: []string{"a", "is", "us", "on", "ix", "ax"},
	},
	entities.ElementIce: {
		prefixes: []string{"Cryo", "Frost", "Glac", "Ic", "Frig", "Chill", "Freez", "Cryst"},
		suffixes: []string{"a", "is", "us", "on", "an", "ix"},
	},
}

var (
	clanAdjectives = []string{
		"Fireborn", "Storm", "Ancient", "Eternal", "Shadow", "Crystal", "Thunder",
		"Dragon", "Mystic", "Sacred", "Frozen", "Blazing", "Golden", "Silver",
		"Iron", "Steel", "Frost", "Flame", "Wind", "Earth", "Lightning", "Ice",
		"Noble", "Royal", "Wild", "Fierce", "Mighty", "Legendary", "Divine",
		"Dark", "Bright", "Savage", "Wise", "Bold", "Swift", "Strong",
	}
	clanNouns = []string{
		"Clan", "Order", "Brotherhood", "Sisterhood", "Guild", "Circle", "Council",
		"Alliance", "Legion", "Guard", "Keep", "Tower", "Sanctuary", "Haven",
		"Stronghold", "Fortress", "Realm", "Domain", "Tribe", "Nation", "Empire",
		"Dynasty", "House", "Bloodline", "Lineage", "Horde", "Flight", "Wing",
	}
)

// NameGenerator draws dragon and clan names from fixed syllable tables.
type NameGenerator struct {
	rng ports.RandomSource
}

// NewNameGenerator creates a new NameGenerator.
func NewNameGenerator(rng ports.RandomSource) *NameGenerator {
	return &NameGenerator{rng: rng}
}

// DragonName returns a name. With an element it usually draws from that
// element's table, otherwise it builds a generic syllable name.
func (g *NameGenerator) DragonName(element *entities.Element) string {
	if element != nil {
		if names, ok := elementNameTable[*element]; ok && g.rng.Float64() < elementNameChance {
			return g.pick(names.prefixes) + g.pick(names.suffixes)
		}
	}

	middle := ""
	prefix := g.pick(namePrefixes)
	if g.rng.Float64() < middleChance {
		middle = g.pick(nameMiddles)
	}
	return prefix + middle + g.pick(nameSuffixes)
}

// DragonNames returns up to count distinct names in generation order.
// Fewer are returned only when the tables run out of fresh combinations.
func (g *NameGenerator) DragonNames(count int, element *entities.Element) []string {
	names := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for attempts := 0; len(names) < count && attempts < count*maxNameAttempts; attempts++ {
		name := g.DragonName(element)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// UniqueDragonName returns a name not present in taken, falling back to a
// numbered variant when the tables are exhausted.
func (g *NameGenerator) UniqueDragonName(element *entities.Element, taken func(string) bool) string {
	name := g.DragonName(element)
	for attempt := 1; attempt < maxNameAttempts && taken(name); attempt++ {
		name = g.DragonName(element)
	}
	base := name
	for n := 2; taken(name); n++ {
		name = fmt.Sprintf("%s %d", base, n)
	}
	return name
}

// ClanName returns a name of the form "The <Adjective> <Noun>".
func (g *NameGenerator) ClanName() string {
	return fmt.Sprintf("The %s %s", g.pick(clanAdjectives), g.pick(clanNouns))
}

func (g *NameGenerator) pick(options []string) string {
	return options[g.rng.IntN(len(options))]
}
