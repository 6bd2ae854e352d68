package entities

import "sort"

// Ledger holds a dragon's relationships keyed by counterpart name.
// Records are created lazily on the first interaction with a counterpart.
type Ledger struct {
	entries map[string]*Relationship
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*Relationship)}
}

// Get returns the relationship toward target, or nil if none exists yet.
func (l *Ledger) Get(target string) *Relationship {
	return l.entries[target]
}

// Opinion returns the opinion of target, defaulting to 0.
func (l *Ledger) Opinion(target string) int {
	if r, ok := l.entries[target]; ok {
		return r.Opinion
	}
	return 0
}

// GetOrCreate returns the relationship toward target, creating a neutral one if needed.
func (l *Ledger) GetOrCreate(target string) *Relationship {
	if r, ok := l.entries[target]; ok {
		return r
	}
	r := NewRelationship(target)
	l.entries[target] = r
	return r
}

// Record applies delta to the relationship toward target and returns the new opinion.
func (l *Ledger) Record(target string, delta int, description string) int {
	return l.GetOrCreate(target).Record(delta, description)
}

// Forget drops the relationship toward target.
func (l *Ledger) Forget(target string) {
	delete(l.entries, target)
}

// Len returns the number of relationships held.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Targets returns the counterpart names in sorted order.
func (l *Ledger) Targets() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
