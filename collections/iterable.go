package collections

import (
	"iter"
	"reflect"
)

// Iterable is anything that can be traversed to yield a sequence of T.
//
// A single traversal is all the helpers ever request from an Iterable that
// is not also a [Collection].
type Iterable[T any] interface {
	// All returns an iterator over the elements in encounter order.
	All() iter.Seq[T]
}

// Collection is a finite, in-memory, re-iterable Iterable.
//
// Accept Collection in your own functions so that callers can substitute
// their own container types for [*List].
type Collection[T any] interface {
	Iterable[T]

	// Len returns the number of elements without traversing them.
	Len() int

	// Add appends v at the end of the collection.
	Add(v T)
}

// seq adapts a bare iterator to Iterable.
type seq[T any] iter.Seq[T]

func (s seq[T]) All() iter.Seq[T] { return iter.Seq[T](s) }

// Seq wraps s so it can be passed where an [Iterable] is expected.
// A nil s is reported as absent by every helper.
func Seq[T any](s iter.Seq[T]) Iterable[T] { return seq[T](s) }

// isAbsent reports whether v is nil or an interface holding a nil value.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
