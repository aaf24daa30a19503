package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoredItem struct {
	id    string
	score float64
}

func (s *scoredItem) Score() float64 { return s.score }

func TestPopReturnsAscendingOrder(t *testing.T) {
	h := New()
	items := []*scoredItem{
		{"a", 5}, {"b", 1}, {"c", 3}, {"d", 4}, {"e", 2},
	}
	for _, it := range items {
		h.Push(it)
	}
	require.Equal(t, 5, h.Len())

	var order []string
	for h.Len() > 0 {
		order = append(order, h.Pop().(*scoredItem).id)
	}
	assert.Equal(t, []string{"b", "e", "c", "d", "a"}, order)
}

func TestRescoreElementRestoresInvariant(t *testing.T) {
	h := New()
	a := &scoredItem{"a", 10}
	b := &scoredItem{"b", 20}
	c := &scoredItem{"c", 30}
	h.Push(a)
	h.Push(b)
	h.Push(c)

	c.score = 1
	h.RescoreElement(c)

	assert.Same(t, c, h.Pop())
	assert.Same(t, a, h.Pop())
	assert.Same(t, b, h.Pop())
}

func TestRescoreElementNotQueuedIsNoOp(t *testing.T) {
	h := New()
	a := &scoredItem{"a", 1}
	h.Push(a)

	stray := &scoredItem{"stray", -100}
	h.RescoreElement(stray)

	assert.Equal(t, 1, h.Len())
	assert.Same(t, a, h.Pop())
}

func TestLenReflectsPushAndPop(t *testing.T) {
	h := New()
	assert.Equal(t, 0, h.Len())
	h.Push(&scoredItem{"a", 1})
	assert.Equal(t, 1, h.Len())
	h.Pop()
	assert.Equal(t, 0, h.Len())
}
