package collections

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-collection-utils/arr"
)

// List is an ordered, slice-backed [Collection].
//
// The zero value is an empty list ready to use. Len, All, Items and String
// are safe to call on a nil *List, which behaves as an empty list.
//
//	l := collections.NewList(1, 2, 3)
//	l.Add(4)
//	fmt.Println(l) // [1 2 3 4]
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates a List holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// ListOf creates a List backed by items itself. Appends through the list may
// or may not be visible in the caller's slice, depending on its capacity.
func ListOf[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.Items()) }

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] { return slices.Values(l.Items()) }

// Add appends v to the end of the list.
func (l *List[T]) Add(v T) { l.items = append(l.items, v) }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Items returns the backing slice without copying it.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return l.items
}

// String formats the list the way fmt prints a slice: "[a b c]".
func (l *List[T]) String() string {
	return "[" + arr.Join(l.Items(), " ") + "]"
}
