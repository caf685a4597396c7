package ll1

// SetMap is an insertion-ordered mapping from nonterminal name to
// StringSet, the shape FIRST and FOLLOW both share.
type SetMap struct {
	names []string
	index map[string]int
	sets  []*StringSet
}

// NewSetMap returns an empty SetMap.
func NewSetMap() *SetMap {
	return &SetMap{index: make(map[string]int)}
}

// Get returns the set for name, creating an empty one on first access so
// callers can unconditionally call Add on the result.
func (m *SetMap) Get(name string) *StringSet {
	if i, ok := m.index[name]; ok {
		return m.sets[i]
	}
	s := NewStringSet()
	m.index[name] = len(m.names)
	m.names = append(m.names, name)
	m.sets = append(m.sets, s)
	return s
}

// Lookup returns the set for name without creating one, and whether it
// exists.
func (m *SetMap) Lookup(name string) (*StringSet, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.sets[i], true
}

// Names returns the nonterminal names in first-access order.
func (m *SetMap) Names() []string {
	return m.names
}

// FirstSets is the insertion-ordered mapping from nonterminal name to its
// FIRST set.
type FirstSets = SetMap

// FollowSets is the insertion-ordered mapping from nonterminal name to its
// FOLLOW set.
type FollowSets = SetMap
