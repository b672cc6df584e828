package collection_test

import (
	"testing"

	"github.com/on-the-ground/underbar_go/collection"
	"github.com/stretchr/testify/assert"
)

func TestExtend(t *testing.T) {
	target := collection.MappingOf(collection.PairOf("a", 1), collection.PairOf("b", 2))
	first := collection.MappingOf(collection.PairOf("b", 20), collection.PairOf("c", 30))
	second := collection.MappingOf(collection.PairOf("c", 300), collection.PairOf("d", 400))

	got := collection.Extend(target, first, nil, second)

	assert.Same(t, target, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got.Keys())
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 300, "d": 400}, got.ToMap())

	assert.Equal(t, 2, first.Len(), "sources are not modified")
}

func TestExtend_NoSources(t *testing.T) {
	target := collection.MappingOf(collection.PairOf("a", 1))
	assert.Same(t, target, collection.Extend(target))
	assert.Equal(t, 1, target.Len())
}

func TestDefaults(t *testing.T) {
	target := collection.MappingOf(collection.PairOf("flavor", "chocolate"))
	first := collection.MappingOf(
		collection.PairOf("flavor", "vanilla"),
		collection.PairOf("sprinkles", "lots"),
	)
	second := collection.MappingOf(
		collection.PairOf("sprinkles", "none"),
		collection.PairOf("cone", "waffle"),
	)

	got := collection.Defaults(target, first, second)

	assert.Same(t, target, got)
	assert.Equal(t, map[string]string{
		"flavor":    "chocolate",
		"sprinkles": "lots",
		"cone":      "waffle",
	}, got.ToMap())
}

func TestDefaults_KeepsPresentZeroValues(t *testing.T) {
	target := collection.MappingOf(collection.PairOf("n", 0))
	collection.Defaults(target, collection.MappingOf(collection.PairOf("n", 9)))

	n, _ := target.Get("n")
	assert.Equal(t, 0, n)
}

func TestMerge_NilTargetPanics(t *testing.T) {
	var target *collection.Mapping[string, int]
	src := collection.MappingOf(collection.PairOf("a", 1))

	assert.PanicsWithError(t, "collection: argument is neither a sequence nor a mapping: nil target mapping", func() {
		collection.Extend(target, src)
	})
	assert.Panics(t, func() { collection.Defaults(target, src) })
}
