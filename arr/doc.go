// Package arr provides standalone helper functions over plain Go slices and
// [iter.Seq] iterators. They are the primitives the collections package is
// built on, and are usable on their own when no wrapper type is wanted:
//
//	items := arr.Collect(maps.Keys(m))              // drain an iterator
//	items  = arr.AppendSeq(items, slices.Values(xs)) // append another one
//	names := arr.Map(users, func(u User) string { return u.Name })
//	line  := arr.Join([]int{1, 2, 3}, "-")           // → "1-2-3"
//
// # Nil handling
//
// A nil slice is treated as empty and a nil iterator as yielding nothing.
// None of the helpers return a nil slice, so results can be compared and
// JSON-encoded without special cases.
package arr
