// Package collection provides small generic helpers for ordered slices.
//
// The shop keeps its catalog and carts as plain slices where the first
// match wins, so most helpers here return or act on the first element that
// satisfies a predicate.
//
//	p, ok := collection.First(products, func(p *models.Product) bool { return p.Name == "Apple" })
//	cart, removed := collection.RemoveFirst(cart, func(s string) bool { return s == "Apple" })
package collection

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	if i := Index(s, fn); i >= 0 {
		return s[i], true
	}
	var zero T
	return zero, false
}

// Index returns the position of the first element matching fn, or -1.
func Index[T any](s []T, fn func(T) bool) int {
	for i, v := range s {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	return Index(s, fn) >= 0
}

// RemoveFirst deletes the first element matching fn, preserving the order of
// the rest. s is modified in place; use the returned slice.
func RemoveFirst[T any](s []T, fn func(T) bool) ([]T, bool) {
	i := Index(s, fn)
	if i < 0 {
		return s, false
	}
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1], true
}
