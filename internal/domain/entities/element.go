// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// Element is the elemental affinity of a dragon. It never changes after creation.
type Element string

const (
	ElementFire      Element = "Fire"
	ElementWater     Element = "Water"
	ElementEarth     Element = "Earth"
	ElementWind      Element = "Wind"
	ElementLightning Element = "Lightning"
	ElementIce       Element = "Ice"
)

// DefaultElement is used when a label cannot be parsed.
const DefaultElement = ElementFire

// AllElements lists every element in canonical order.
var AllElements = []Element{
	ElementFire,
	ElementWater,
	ElementEarth,
	ElementWind,
	ElementLightning,
	ElementIce,
}

// ParseElement converts a label to an Element, ignoring case and surrounding space.
// Unknown labels return DefaultElement together with an error wrapping ErrInvalidElement.
func ParseElement(label string) (Element, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, e := range AllElements {
		if strings.ToLower(string(e)) == normalized {
			return e, nil
		}
	}
	return DefaultElement, fmt.Errorf("%w: %q", ErrInvalidElement, label)
}

// String returns the element label.
func (e Element) String() string {
	return string(e)
}

// ElementPreferences holds the elements a dragon is drawn to or repelled by.
type ElementPreferences struct {
	Preferred []Element
	Disliked  []Element
}

// defaultElementPreferences is the affinity table keyed by a dragon's own element.
var defaultElementPreferences = map[Element]ElementPreferences{
	ElementFire: {
		Preferred: []Element{ElementFire, ElementLightning},
		Disliked:  []Element{ElementWater, ElementIce},
	},
	ElementWater: {
		Preferred: []Element{ElementWater, ElementIce},
		Disliked:  []Element{ElementFire, ElementLightning},
	},
	ElementEarth: {
		Preferred: []Element{ElementEarth, ElementWind},
	},
	ElementWind: {
		Preferred: []Element{ElementWind, ElementLightning},
	},
	ElementLightning: {
		Preferred: []Element{ElementLightning, ElementFire},
		Disliked:  []Element{ElementEarth},
	},
	ElementIce: {
		Preferred: []Element{ElementIce, ElementWater},
		Disliked:  []Element{ElementFire},
	},
}

// DefaultElementPreferences returns a copy of the affinity table entry for e.
func DefaultElementPreferences(e Element) ElementPreferences {
	p := defaultElementPreferences[e]
	return ElementPreferences{
		Preferred: append([]Element(nil), p.Preferred...),
		Disliked:  append([]Element(nil), p.Disliked...),
	}
}

// Prefers reports whether other is in the preferred set.
func (p ElementPreferences) Prefers(other Element) bool {
	return containsElement(p.Preferred, other)
}

// Dislikes reports whether other is in the disliked set.
func (p ElementPreferences) Dislikes(other Element) bool {
	return containsElement(p.Disliked, other)
}

func containsElement(set []Element, e Element) bool {
	for _, s := range set {
		if s == e {
			return true
		}
	}
	return false
}
