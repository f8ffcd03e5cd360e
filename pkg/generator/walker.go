package generator

import "github.com/cliffjones/neologizer/pkg/rules"

// walker picks the transitions of a pass. ok is false when no rule matches.
type walker interface {
	start() (rule rules.Rule, ok bool)
	next(prev, cur rune) (rule rules.Rule, ok bool)
}

func newWalker(sel Selection, set []rules.Rule, src Source) walker {
	if sel == SelectionShuffle {
		owned := make([]rules.Rule, len(set))
		copy(owned, set)
		return &shuffleWalker{set: owned, src: src}
	}
	return &indexWalker{idx: rules.NewIndex(set), src: src}
}

type indexWalker struct {
	idx *rules.Index
	src Source
}

func (w *indexWalker) start() (rules.Rule, bool) {
	return w.pick(w.idx.Starts())
}

func (w *indexWalker) next(prev, cur rune) (rules.Rule, bool) {
	return w.pick(w.idx.Next(prev, cur))
}

func (w *indexWalker) pick(bucket []rules.Rule) (rules.Rule, bool) {
	if len(bucket) == 0 {
		return rules.Rule{}, false
	}
	return bucket[w.src.Intn(len(bucket))], true
}

// shuffleWalker owns its copy of the rule set and reorders it in place
// before every step.
type shuffleWalker struct {
	set []rules.Rule
	src Source
}

func (w *shuffleWalker) start() (rules.Rule, bool) {
	return w.scan(func(r rules.Rule) bool { return r.Left == rules.Boundary })
}

func (w *shuffleWalker) next(prev, cur rune) (rules.Rule, bool) {
	return w.scan(func(r rules.Rule) bool { return r.Left == prev && r.Center == cur })
}

func (w *shuffleWalker) scan(match func(rules.Rule) bool) (rules.Rule, bool) {
	w.src.Shuffle(len(w.set), func(i, j int) {
		w.set[i], w.set[j] = w.set[j], w.set[i]
	})
	for _, r := range w.set {
		if match(r) {
			return r, true
		}
	}
	return rules.Rule{}, false
}
