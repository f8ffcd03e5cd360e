package rules

// pair identifies the position of the walk: the letter placed before the
// current one, and the current one.
type pair struct {
	prev rune
	cur  rune
}

// Index groups a rule set by the context each rule continues from.
// Every bucket keeps duplicate rules, so picking uniformly inside a bucket
// selects a transition with probability proportional to its multiplicity.
type Index struct {
	starts  []Rule
	buckets map[pair][]Rule
	size    int
}

// NewIndex builds an Index over set. The set itself is not retained.
func NewIndex(set []Rule) *Index {
	idx := &Index{
		buckets: make(map[pair][]Rule),
		size:    len(set),
	}
	for _, r := range set {
		if r.IsStart() {
			idx.starts = append(idx.starts, r)
		}
		key := pair{prev: r.Left, cur: r.Center}
		idx.buckets[key] = append(idx.buckets[key], r)
	}
	return idx
}

// Starts returns the rules that may open a word.
func (idx *Index) Starts() []Rule {
	return idx.starts
}

// Next returns the rules whose Left and Center equal prev and cur.
func (idx *Index) Next(prev, cur rune) []Rule {
	return idx.buckets[pair{prev: prev, cur: cur}]
}

// Len returns the number of rules indexed.
func (idx *Index) Len() int {
	return idx.size
}

// Contexts returns the number of distinct contexts.
func (idx *Index) Contexts() int {
	return len(idx.buckets)
}
