package collections

import "github.com/hasbyte1/go-collection-utils/arr"

// Mapper converts one element of type T to one element of type U.
type Mapper[T, U any] func(T) U

// IsEmpty reports whether values is absent or holds no elements.
func IsEmpty[T any](values Collection[T]) bool {
	return isAbsent(values) || values.Len() == 0
}

// IsNotEmpty is the negation of [IsEmpty].
func IsNotEmpty[T any](values Collection[T]) bool { return !IsEmpty(values) }

// Size returns the number of elements in values, or 0 when it is absent.
func Size[T any](values Collection[T]) int {
	if isAbsent(values) {
		return 0
	}
	return values.Len()
}

// ToCollection loads it into an in-memory collection, preserving order.
//
//   - An absent it yields a new, empty [*List].
//   - A Collection is returned as is; the result aliases the input.
//   - Anything else is traversed exactly once into a new [*List].
//
// The result is never nil. Panics raised while traversing it propagate.
func ToCollection[T any](it Iterable[T]) Collection[T] {
	if isAbsent(it) {
		return &List[T]{items: make([]T, 0)}
	}
	if c, ok := it.(Collection[T]); ok {
		return c
	}
	return &List[T]{items: arr.Collect(it.All())}
}

// Join concatenates the fmt.Sprint form of every element of values in
// iteration order, with sep between consecutive elements. It returns "" when
// values is absent or empty.
//
//	collections.Join(collections.NewList(1, 2, 3), "-") // → "1-2-3"
func Join[T any](values Collection[T], sep string) string {
	if IsEmpty(values) {
		return ""
	}
	return arr.JoinSeq(values.All(), sep)
}

// Map returns a new slice holding mapper(v) for every element v of inputs,
// in order. Unlike the other helpers, Map does not accept an absent input:
// it returns [ErrNilCollection] instead. This includes a collection whose
// value is a nil map or slice, even if its methods would treat it as empty.
//
// A panic in mapper propagates to the caller and no further elements are
// mapped.
func Map[T, U any](inputs Collection[T], mapper Mapper[T, U]) ([]U, error) {
	if isAbsent(inputs) {
		return nil, ErrNilCollection
	}
	if l, ok := inputs.(*List[T]); ok {
		return arr.Map[T, U](l.items, mapper), nil
	}
	out := make([]U, 0, inputs.Len())
	for v := range inputs.All() {
		out = append(out, mapper(v))
	}
	return out, nil
}

// MapErr is [Map] for a mapper that can fail. The first error returned by
// mapper is passed back unchanged together with a nil slice, and the
// remaining elements are not visited.
func MapErr[T, U any](inputs Collection[T], mapper func(T) (U, error)) ([]U, error) {
	if isAbsent(inputs) {
		return nil, ErrNilCollection
	}
	out := make([]U, 0, inputs.Len())
	for v := range inputs.All() {
		u, err := mapper(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// AddAll appends every element of it, in traversal order, to collection.
// It does nothing when either argument is absent. Elements are added one at
// a time, so if traversal panics the ones already yielded stay in collection.
func AddAll[T any](collection Collection[T], it Iterable[T]) {
	if isAbsent(collection) || isAbsent(it) {
		return
	}
	seq := it.All()
	if seq == nil {
		return
	}
	for v := range seq {
		collection.Add(v)
	}
}
