// Package purefn provides function decorators: wrappers that take a function
// and return a new one with different invocation semantics.
//
//   - Once: run on the first call, return that result forever after.
//   - Memoize: cache results per distinct argument list.
//   - Delay: run once, later, on a scheduler.
//   - Throttle: run at most once per time window.
//
// Go functions have fixed arities, so each decorator comes as a small family
// named after the shape it wraps: MemoizeI2O1 wraps func(I1, I2) O1,
// OnceI1O2 wraps func(I1) (O1, O2), and so on.
//
// # Memoize
//
// Memoize asks the same question as a lookup table would:
//
//	→ "Is this function really pure?"
//
// A memoized function is keyed by its *whole* argument list, so f(1, 2) and
// f(1, 3) are cached separately. Arguments must be comparable or implement
// fmt.Stringer (see pure.KeyOf). Results live in a bounded pure.Trie by
// default, or in a ristretto cache with WithBackend(BackendRistretto).
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
//
// # Throttle
//
// Throttle uses a leading-edge policy. The throttle is either idle or cooling
// down:
//
//	idle         --call: run fn, start timer-->  cooling-down
//	cooling-down --call: dropped------------->  cooling-down
//	cooling-down --timer fires--------------->  idle
//
// Delay and Throttle share the scheduler from WithScheduler, which defaults
// to scheduler.Default().
//
// State (a flag, a cache, a timer) belongs to the function returned by each
// decorator; two wrappers of the same function share nothing. Once and
// Memoize are meant for a single goroutine; Throttle is safe to call from
// several.
package purefn
