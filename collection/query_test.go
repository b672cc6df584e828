package collection_test

import (
	"testing"

	"github.com/on-the-ground/underbar_go/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, 1, collection.Identity(1))
	m := collection.NewMapping[string, int]()
	assert.Same(t, m, collection.Identity(m))
}

func TestFirstLast(t *testing.T) {
	s := []int{1, 2, 3}

	first, ok := collection.First(s)
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := collection.Last(s)
	assert.True(t, ok)
	assert.Equal(t, 3, last)

	_, ok = collection.First([]int{})
	assert.False(t, ok)
	_, ok = collection.Last([]int(nil))
	assert.False(t, ok)
}

func TestFirstN(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, collection.FirstN(s, 2))
	assert.Equal(t, []int{1, 2, 3}, collection.FirstN(s, 5))
	assert.Equal(t, []int{}, collection.FirstN(s, 0))
	assert.Equal(t, []int{}, collection.FirstN(s, -1))

	out := collection.FirstN(s, 1)
	out[0] = 100
	assert.Equal(t, 1, s[0], "result must not alias the input")
}

func TestLastN(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{2, 3}, collection.LastN(s, 2))
	assert.Equal(t, []int{1, 2, 3}, collection.LastN(s, 5))
	assert.Equal(t, []int{}, collection.LastN(s, 0))
}

func TestIndexOf(t *testing.T) {
	s := []int{10, 20, 30, 20}
	assert.Equal(t, 1, collection.IndexOf(s, 20), "first match wins")
	assert.Equal(t, 0, collection.IndexOf(s, 10))
	assert.Equal(t, -1, collection.IndexOf(s, 40))
	assert.Equal(t, -1, collection.IndexOf([]int{}, 1))

	assert.Equal(t, -1, collection.IndexOf([]any{1}, any("1")), "equality is strict")
}

func TestFilterReject(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	s := collection.Of(1, 2, 3, 4, 5, 6)

	assert.Equal(t, []int{2, 4, 6}, collection.Filter(s, isEven))
	assert.Equal(t, []int{1, 3, 5}, collection.Reject(s, isEven))
	assert.Equal(t, []int{}, collection.Filter(collection.Of[int](), isEven))

	m := collection.MappingOf(
		collection.PairOf("a", 1),
		collection.PairOf("b", 2),
		collection.PairOf("c", 3),
	)
	assert.Equal(t, []int{1, 3}, collection.Reject(m, isEven))
}

func TestFilterWithKey(t *testing.T) {
	s := collection.Of("a", "b", "c", "d")
	got := collection.FilterWithKey(s, func(_ string, i int, _ collection.Collection[int, string]) bool {
		return i%2 == 1
	})
	assert.Equal(t, []string{"b", "d"}, got)
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, collection.Uniq([]int{1, 2, 1, 3, 2, 4}))
	assert.Equal(t, []string{}, collection.Uniq([]string{}))
	assert.Equal(t, []any{1, "1"}, collection.Uniq([]any{1, "1", 1}))

	s := []int{3, 1, 3, 2, 1}
	once := collection.Uniq(s)
	assert.Equal(t, once, collection.Uniq(once), "uniq is idempotent")
	assert.Equal(t, []int{3, 1, 3, 2, 1}, s, "input must not be modified")
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, []int{2, 4, 6}, collection.Map(collection.Of(1, 2, 3), double))

	m := collection.MappingOf(collection.PairOf("a", 1), collection.PairOf("b", 2))
	labels := collection.MapWithKey(m, func(v int, k string, _ collection.Collection[string, int]) string {
		return k + "=" + string(rune('0'+v))
	})
	assert.Equal(t, []string{"a=1", "b=2"}, labels)
}

func TestPluck(t *testing.T) {
	people := collection.Of(
		map[string]any{"name": "moe", "age": 30},
		map[string]any{"name": "curly", "age": 50},
		map[string]any{"age": 60},
	)
	assert.Equal(t, []any{"moe", "curly", nil}, collection.Pluck(people, "name"))
}

type stooge struct {
	Name   string
	Age    int
	secret string
}

func TestPluckField(t *testing.T) {
	people := collection.Of(
		stooge{Name: "moe", Age: 30},
		stooge{Name: "curly", Age: 50},
	)
	names, err := collection.PluckField(people, "Name")
	require.NoError(t, err)
	assert.Equal(t, []any{"moe", "curly"}, names)

	ptrs := collection.Of(&stooge{Age: 1}, &stooge{Age: 2})
	ages, err := collection.PluckField(ptrs, "Age")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, ages)

	maps := collection.Of(map[string]int{"x": 1}, map[string]int{})
	xs, err := collection.PluckField(maps, "x")
	require.NoError(t, err)
	assert.Equal(t, []any{1, nil}, xs)
}

func TestPluckField_Errors(t *testing.T) {
	people := collection.Of(stooge{Name: "moe"})

	_, err := collection.PluckField(people, "Height")
	assert.ErrorIs(t, err, collection.ErrFieldNotFound)

	_, err = collection.PluckField(people, "secret")
	assert.ErrorIs(t, err, collection.ErrFieldNotFound, "unexported fields are not readable")

	_, err = collection.PluckField(collection.Of(1, 2), "Name")
	assert.ErrorIs(t, err, collection.ErrFieldNotFound)
}

func TestContains(t *testing.T) {
	assert.True(t, collection.Contains(collection.Of(1, 2, 3), 3))
	assert.False(t, collection.Contains(collection.Of(1, 2, 3), 4))
	assert.False(t, collection.Contains(collection.Of[int](), 0))

	m := collection.MappingOf(collection.PairOf("a", "x"), collection.PairOf("b", "y"))
	assert.True(t, collection.Contains(m, "y"))
	assert.False(t, collection.Contains(m, "a"), "keys are not values")
}
