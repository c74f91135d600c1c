package collections_test

import (
	"iter"
	"slices"
)

// bag is a Collection[int] that is not a *List, so the helpers take their
// generic paths.
type bag struct {
	items []int
}

func (b *bag) All() iter.Seq[int] { return slices.Values(b.items) }
func (b *bag) Len() int           { return len(b.items) }
func (b *bag) Add(v int)          { b.items = append(b.items, v) }

// counted is an Iterable[int] that records how many times it is traversed.
type counted struct {
	items      []int
	traversals int
}

func (c *counted) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		c.traversals++
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// frozen is a slice-typed Collection[int] with value receivers.
type frozen []int

func (f frozen) All() iter.Seq[int] { return slices.Values(f) }
func (f frozen) Len() int           { return len(f) }
func (f frozen) Add(int)            { panic("frozen: read-only") }
