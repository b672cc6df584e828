// Package collection provides eager, generic operations over two kinds of
// collections: ordered sequences ([Seq]) and insertion-ordered key-value
// mappings ([*Mapping]).
//
// # Model
//
// Both kinds satisfy the sealed [Collection] interface. A sequence is keyed by
// index; a mapping by its own keys. Every operation is built on two
// primitives, [Each] and [Reduce], so the iteration order is the same
// everywhere: index order for sequences, insertion order for mappings.
//
//	ages := collection.MappingOf(
//	    collection.PairOf("ann", 31),
//	    collection.PairOf("bob", 17),
//	)
//	adults := collection.Filter(ages, func(age int) bool { return age >= 18 })
//	// [31]
//
// Operations that only make sense on positions (First, Zip, Uniq, ...) take a
// plain slice instead of a Collection.
//
// # Mutation
//
// No operation mutates its input, with two exceptions: [Extend] and
// [Defaults] write into the target mapping and return that same mapping.
//
// # Equality
//
// IndexOf, Uniq, Contains, Intersection and Difference use Go's == operator.
// Comparing interface values whose dynamic type is not comparable panics, as
// it does anywhere else in Go.
//
// # Errors
//
// A nil Collection is a programmer error and panics with [ErrNotCollection].
// Data-dependent failures (missing method, missing field, empty reduce) are
// returned as errors wrapping the sentinels in errors.go.
//
// Collection operations are not safe for concurrent use on the same mapping.
package collection
