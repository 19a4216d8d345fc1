package pqueue

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopReturnsMinimum(t *testing.T) {
	q := New(0)
	for i, d := range []int{9, 3, 7, 1, 8, 3, 0, 12} {
		q.Push(d, i)
	}

	var got []int
	for !q.Empty() {
		it, ok := q.Pop()
		require.True(t, ok)
		got = append(got, it.Dist)
	}
	assert.Equal(t, []int{0, 1, 3, 3, 7, 8, 9, 12}, got)
}

func TestEmptyQueue(t *testing.T) {
	var q Queue
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestInterleavedPushPop(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	q := New(16)
	var shadow []int
	pushes, pops := 0, 0

	for step := 0; step < 500; step++ {
		if len(shadow) == 0 || r.IntN(3) > 0 {
			d := r.IntN(100)
			q.Push(d, step)
			shadow = append(shadow, d)
			pushes++
		} else {
			sort.Ints(shadow)
			it, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, shadow[0], it.Dist, "step %d", step)
			shadow = shadow[1:]
			pops++
		}
		require.Equal(t, pushes-pops, q.Len())
		if top, ok := q.Peek(); ok {
			assert.Equal(t, q.h[0], top)
		}
	}
}

func TestHeapInvariant(t *testing.T) {
	q := New(0)
	for _, d := range []int{5, 4, 3, 2, 1, 6, 7, 0, 2} {
		q.Push(d, d)
	}
	q.Pop()
	q.Pop()

	for i := range q.h {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(q.h) {
				assert.LessOrEqual(t, q.h[i].Dist, q.h[c].Dist)
			}
		}
	}
}
