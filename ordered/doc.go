package ordered

// Package ordered provides insertion-ordered, uniqueness-enforcing
// containers:
//
// - Set: an ordered set whose elements are their own keys (first write wins)
// - ExtendedSet: an ordered set with a caller-supplied key function,
//   decoupling membership identity from the stored value
// - Index / StrictIndex: ordered key/value mappings; the strict variant
//   rejects writes that would overwrite an existing key
// - SortedList: a sequence kept sorted through binary insertion
// - SetView: a read-only view over a Set
//
// Design policy:
// - Iteration order is first-insertion order everywhere; removal never
//   reorders survivors, and re-adding a removed key appends.
// - Mutations either fully apply or leave the container untouched.
// - The package is single-threaded; callers serialize concurrent access.
