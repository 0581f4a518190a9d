package common

import "slices"

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AppendUniqueFunc appends v unless eq matches it against an element of s.
func AppendUniqueFunc[S ~[]E, E any](s S, v E, eq func(a, b E) bool) S {
	if slices.ContainsFunc(s, func(e E) bool { return eq(e, v) }) {
		return s
	}

	return append(s, v)
}
