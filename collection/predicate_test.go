package collection_test

import (
	"testing"

	"github.com/on-the-ground/underbar_go/collection"
	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, collection.Truthy(0))
	assert.False(t, collection.Truthy(""))
	assert.False(t, collection.Truthy(false))
	assert.False(t, collection.Truthy[any](nil))
	assert.False(t, collection.Truthy((*int)(nil)))

	assert.True(t, collection.Truthy(1))
	assert.True(t, collection.Truthy("a"))
	assert.True(t, collection.Truthy(true))
	assert.True(t, collection.Truthy([]int{}), "an empty non-nil slice is truthy")

	assert.False(t, collection.Truthy[any](0), "interface values are judged by their dynamic value")
}

func TestEvery(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	assert.True(t, collection.Every(collection.Of(2, 4, 6), isEven))
	assert.False(t, collection.Every(collection.Of(2, 3, 6), isEven))
	assert.True(t, collection.Every(collection.Of[int](), isEven), "vacuously true")

	assert.True(t, collection.Every(collection.Of(true, true), nil))
	assert.False(t, collection.Every(collection.Of(true, false), nil))
	assert.False(t, collection.Every(collection.Of(1, 0), nil))
}

func TestEvery_StaysFalse(t *testing.T) {
	calls := 0
	got := collection.Every(collection.Of(1, 2, 3, 4), func(n int) bool {
		calls++
		return n != 2
	})
	assert.False(t, got)
	assert.Equal(t, 2, calls, "the predicate is not consulted once the result is false")
}

func TestSome(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	assert.True(t, collection.Some(collection.Of(1, 3, 4), isEven))
	assert.False(t, collection.Some(collection.Of(1, 3, 5), isEven))
	assert.False(t, collection.Some(collection.Of[int](), isEven))

	assert.True(t, collection.Some(collection.Of(false, true), nil))
	assert.False(t, collection.Some(collection.Of("", ""), nil))

	m := collection.MappingOf(collection.PairOf("a", 0), collection.PairOf("b", 5))
	assert.True(t, collection.Some(m, nil))
}
