// Package maybe provides Maybe[T], an optional value that is either Some(v)
// or None. Lookups return it instead of a nil pointer so that callers have to
// handle absence explicitly.
package maybe
