// Package rules extracts letter-adjacency rules from a corpus.
//
// For every letter of every word a Rule (left, center, right) is produced,
// where left and right are the neighbouring letters or Boundary at the edges
// of the word. The rule set for ["cat", "cap"] is:
//
//	_ca cat at_ _ca cap ap_
//
// Index buckets a rule set by the (left, center) context so a generator can
// pick the next transition without scanning the whole set.
package rules
