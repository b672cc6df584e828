package pure

// Table stores memoized results under a key path.
type Table[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

var (
	_ Table[any] = (*Trie[any])(nil)
	_ Table[any] = (*RistrettoTable[any])(nil)
)
