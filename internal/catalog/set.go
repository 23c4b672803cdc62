package catalog

import "slices"

// Set is a membership set. Methods never modify the receiver, so a Set held
// inside a Criteria value can be shared safely.
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable](values ...T) Set[T] {
	s := Set[T]{m: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.m[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s.m)
}

// Toggle returns a copy of s with v added when absent or removed when present.
func (s Set[T]) Toggle(v T) Set[T] {
	next := Set[T]{m: make(map[T]struct{}, len(s.m)+1)}
	for k := range s.m {
		next.m[k] = struct{}{}
	}

	if _, ok := next.m[v]; ok {
		delete(next.m, v)
	} else {
		next.m[v] = struct{}{}
	}

	return next
}

// Values returns the members ordered as they appear in order; members missing
// from order are dropped.
func (s Set[T]) Values(order []T) []T {
	return slices.DeleteFunc(slices.Clone(order), func(v T) bool {
		return !s.Has(v)
	})
}
