// Package pure holds the memo tables behind memoized functions.
//
// A memoized call is looked up by its full argument list: every argument
// becomes one Key segment (see KeyOf), and the resulting path indexes a Table.
// Two tables are provided:
//   - Trie: nested maps with a bounded two-generation rotation.
//   - RistrettoTable: a frequency-admitting ristretto cache; lossy under pressure.
//
// Arguments must be comparable or implement fmt.Stringer. Use these tables
// only for pure functions; a cached result is returned without re-running
// the function.
package pure
