// Package collections provides null-tolerant helper functions over generic
// collections and iterables, so callers need not repeat nil and empty checks.
//
// # Overview
//
// Two small interfaces describe the inputs:
//
//   - [Iterable][T] is anything that can hand out an [iter.Seq][T].
//   - [Collection][T] is an Iterable that can also report its length and
//     accept new elements.
//
// [List][T] is the slice-backed Collection returned by the helpers; bare
// iterators are adapted with [Seq]:
//
//	c := collections.ToCollection(collections.Seq(maps.Keys(m)))
//	collections.AddAll(c, collections.Seq(slices.Values(extra)))
//	fmt.Println(collections.Size(c), collections.Join(c, ", "))
//
// # Absent values
//
// A nil interface, or an interface wrapping a nil pointer, slice, map, func
// or chan, is treated as absent. Every helper accepts an absent argument and
// treats it as empty, with one exception: [Map] and [MapErr] require their
// input and return [ErrNilCollection] when it is absent.
//
// # Aliasing
//
// [ToCollection] returns its argument unchanged when it already implements
// [Collection]; the result shares storage with the input and mutations are
// visible through both. Otherwise it copies into a new [List].
//
// # Concurrency
//
// The helpers hold no state. A List is not safe for concurrent mutation;
// calling [AddAll] on the same collection from several goroutines needs
// external locking.
package collections
