package features

import "sort"

// Set is an unordered collection of feature names. Sets are built fresh
// from loaded lists and never mutated after creation; intersections
// produce new sets.
type Set map[string]struct{}

// NewSet builds a set from a list of names, deduplicating.
func NewSet(names []string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Len returns the number of names in the set.
func (s Set) Len() int { return len(s) }

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexicographic ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the intersection of all given sets. An empty argument
// list yields the empty set. The accumulator is seeded with the first set
// and short-circuits once it empties; the result is independent of
// argument order.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return Set{}
	}
	acc := make(Set, len(sets[0]))
	for n := range sets[0] {
		acc[n] = struct{}{}
	}
	for _, s := range sets[1:] {
		for n := range acc {
			if !s.Contains(n) {
				delete(acc, n)
			}
		}
		if len(acc) == 0 {
			break
		}
	}
	return acc
}
