package arr

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iterators
// ─────────────────────────────────────────────────────────────────────────────

// Collect drains seq into a newly allocated slice, in encounter order.
// A nil seq produces an empty, non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return AppendSeq(make([]T, 0), seq)
}

// AppendSeq appends every value yielded by seq to dst and returns the
// extended slice. seq is traversed exactly once; a nil seq leaves dst as is.
func AppendSeq[S ~[]T, T any](dst S, seq iter.Seq[T]) S {
	if seq == nil {
		return dst
	}
	for v := range seq {
		dst = append(dst, v)
	}
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice of the same length.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Join concatenates the fmt.Sprint form of each element, placing sep
// between consecutive elements.
func Join[T any](items []T, sep string) string {
	return JoinSeq(slices.Values(items), sep)
}

// JoinSeq is [Join] over an iterator. A nil seq yields "".
func JoinSeq[T any](seq iter.Seq[T], sep string) string {
	if seq == nil {
		return ""
	}
	var b strings.Builder
	first := true
	for v := range seq {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}
