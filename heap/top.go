package heap

import "iter"

// Bottom returns the n first elements of seq as ordered by less, in that
// order. If seq yields fewer than n elements, all of them are returned.
func Bottom[T any](seq iter.Seq[T], n int, less Less[T]) []T {
	return pick(seq, n, less)
}

// Top returns the n last elements of seq as ordered by less, starting with
// the last one. If seq yields fewer than n elements, all of them are returned.
func Top[T any](seq iter.Seq[T], n int, less Less[T]) []T {
	return pick(seq, n, func(a, b T) bool { return less(b, a) })
}

func pick[T any](seq iter.Seq[T], n int, less Less[T]) []T {
	assert(n >= 0, "negative element count")
	var elems []T
	for v := range seq {
		elems = append(elems, v)
	}
	h := From(less, elems...)
	k := min(n, h.Len())
	tracer().Debugf("heap: picking %d of %d elements", k, h.Len())
	out := make([]T, 0, k)
	for ; k > 0; k-- {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return out
}
