package ir

import "sort"

// ImportSet is the accumulator the type converter writes into and the
// assembler reads from. It is explicit, caller-owned state (spec.md
// §9: "do not hide it in process-wide state") so type conversion stays
// a pure function of (type string, *ImportSet) and can be exercised by
// tests independently of any parser or assembler.
type ImportSet struct {
	directives map[string]struct{}
}

// NewImportSet returns an empty accumulator.
func NewImportSet() *ImportSet {
	return &ImportSet{directives: make(map[string]struct{})}
}

// Add records an import directive. Duplicate directives are no-ops;
// insertion order is not significant (Sorted below fixes emission
// order).
func (s *ImportSet) Add(directive string) {
	if s == nil {
		return
	}
	s.directives[directive] = struct{}{}
}

// Sorted returns the accumulated import directives in a fixed,
// reproducible order (spec.md §8 "Import minimality and stability").
func (s *ImportSet) Sorted() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.directives))
	for d := range s.directives {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Len reports how many distinct directives have been accumulated.
func (s *ImportSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.directives)
}
