package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/collection"
)

func TestMap(t *testing.T) {
	doubled := collection.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Empty(t, collection.Map(nil, func(v int) int { return v }))
}

func TestFilter(t *testing.T) {
	even := collection.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Nil(t, collection.Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 }))
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]string{"customer", "seller"}, func(s string) bool { return s == "seller" })
	assert.True(t, ok)
	assert.Equal(t, "seller", v)

	_, ok = collection.First([]string{"customer"}, func(s string) bool { return s == "admin" })
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	roles := []string{"seller", "admin"}
	assert.True(t, collection.Contains(roles, func(r string) bool { return r == "admin" }))
	assert.False(t, collection.Contains(roles, func(r string) bool { return r == "customer" }))
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce([]int{1, 2, 3}, 10, func(acc, v int) int { return acc + v })
	assert.Equal(t, 16, sum)
}

func TestSumBy(t *testing.T) {
	type line struct {
		price float64
		qty   int
	}
	lines := []line{{50, 2}, {10, 3}}
	total := collection.SumBy(lines, func(l line) float64 { return l.price * float64(l.qty) })
	assert.InDelta(t, 130, total, 1e-9)
	assert.Zero(t, collection.SumBy(nil, func(l line) float64 { return l.price }))
}
