package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded memo table. Each key segment selects one level of nested
// maps, so every path stored in one Trie must have the same length.
// Entries live in two generations: once the head generation holds maxSize
// entries it becomes the tail and a fresh head takes its place, so the table
// keeps between maxSize and 2*maxSize entries.
type Trie[O any] struct {
	mu      sync.Mutex
	memos   [2]*sync.Map
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[O]{
		memos:   [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	if len(keys) == 0 {
		panic(ErrEmptyKeys)
	}

	t.mu.Lock()
	head := t.headIdx.Load()
	gens := [2]*sync.Map{t.memos[head], t.memos[1-head]}
	t.mu.Unlock()

	for _, root := range gens {
		if v, ok := lookup(root, keys); ok {
			return v.(leaf[O]).value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if len(keys) == 0 {
		panic(ErrEmptyKeys)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size.Load() >= t.maxSize {
		// 꼬리 세대를 버리고 새 머리 세대로 교체
		next := 1 - t.headIdx.Load()
		t.memos[next] = &sync.Map{}
		t.headIdx.Store(next)
		t.size.Store(0)
	}

	m, k := descend(t.memos[t.headIdx.Load()], keys)
	if _, loaded := m.Swap(k, leaf[O]{value: value}); !loaded {
		t.size.Add(1)
	}
}

// Len reports the number of entries in the head generation.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

type leaf[O any] struct {
	value O
}

func lookup(root *sync.Map, keys []Key) (any, bool) {
	m := root
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m.Load(keys[len(keys)-1])
}

func descend(root *sync.Map, keys []Key) (*sync.Map, Key) {
	m := root
	for _, k := range keys[:len(keys)-1] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
