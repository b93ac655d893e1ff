package core

// SampleWithoutReplacement returns n distinct elements of items in random
// order. When n exceeds len(items) every element is returned, shuffled.
func SampleWithoutReplacement[T any](r RandomSource, items []T, n int) []T {
	if r == nil {
		r = globalRand{}
	}
	pool := append([]T(nil), items...)
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// SampleWithReplacement draws n elements independently, so duplicates are
// expected whenever n approaches len(items).
func SampleWithReplacement[T any](r RandomSource, items []T, n int) []T {
	if r == nil {
		r = globalRand{}
	}
	if n <= 0 || len(items) == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[r.IntN(len(items))])
	}
	return out
}

// SelectFromCatalog fills exactly n slots from a fixed catalog: distinct
// entries when the catalog is large enough, repeated draws otherwise.
func SelectFromCatalog[T any](r RandomSource, catalog []T, n int) []T {
	if len(catalog) >= n {
		return SampleWithoutReplacement(r, catalog, n)
	}
	return SampleWithReplacement(r, catalog, n)
}

// SelectAvailable trims collected results down to n without duplicating
// anything. When n or fewer results exist they are all kept in order.
func SelectAvailable[T any](r RandomSource, collected []T, n int) []T {
	if len(collected) > n {
		return SampleWithoutReplacement(r, collected, n)
	}
	return append([]T(nil), collected...)
}
