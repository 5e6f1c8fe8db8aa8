package pqueue_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/pqueue"
)

func TestPriorityQueue_ExtractOrder(t *testing.T) {
	pq := pqueue.New(4)
	pq.Insert(0, 7)
	pq.Insert(1, 3)
	pq.Insert(2, 9)
	pq.Insert(3, 1)

	var got []int
	for !pq.IsEmpty() {
		it, err := pq.ExtractMin()
		require.NoError(t, err)
		got = append(got, it.Vertex)
	}
	assert.Equal(t, []int{3, 1, 0, 2}, got)
}

func TestPriorityQueue_EmptyExtract(t *testing.T) {
	pq := pqueue.New(0)
	assert.True(t, pq.IsEmpty())
	_, err := pq.ExtractMin()
	assert.ErrorIs(t, err, pqueue.ErrEmpty)

	_, ok := pq.Peek()
	assert.False(t, ok)
}

func TestPriorityQueue_Lookup(t *testing.T) {
	pq := pqueue.New(2)
	pq.Insert(5, 40)

	assert.True(t, pq.Contains(5))
	assert.False(t, pq.Contains(6))

	d, ok := pq.Distance(5)
	assert.True(t, ok)
	assert.Equal(t, int64(40), d)

	d, ok = pq.Distance(6)
	assert.False(t, ok)
	assert.Equal(t, pqueue.Infinity, d)
}

func TestPriorityQueue_UpdateDistance(t *testing.T) {
	pq := pqueue.New(3)
	pq.Insert(0, pqueue.Infinity)
	pq.Insert(1, pqueue.Infinity)
	pq.Insert(2, 5)

	// decrease-key moves vertex 1 to the front
	assert.True(t, pq.UpdateDistance(1, 2))
	top, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, pqueue.Item{Vertex: 1, Distance: 2}, top)

	// increase-key sinks it again
	assert.True(t, pq.UpdateDistance(1, 50))
	top, _ = pq.Peek()
	assert.Equal(t, 2, top.Vertex)

	assert.False(t, pq.UpdateDistance(9, 1))
	assert.Equal(t, 3, pq.Len())
}

func TestPriorityQueue_ExtractedIsGone(t *testing.T) {
	pq := pqueue.New(2)
	pq.Insert(0, 1)
	pq.Insert(1, 2)
	_, err := pq.ExtractMin()
	require.NoError(t, err)

	assert.False(t, pq.Contains(0))
	assert.False(t, pq.UpdateDistance(0, 0))
}

// TestPriorityQueueProperties checks heap ordering against a sorted reference.
func TestPriorityQueueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ExtractMin yields distances in ascending order", prop.ForAll(
		func(dists []int64) bool {
			pq := pqueue.New(len(dists))
			for v, d := range dists {
				pq.Insert(v, d)
			}
			want := append([]int64(nil), dists...)
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

			for _, d := range want {
				it, err := pq.ExtractMin()
				if err != nil || it.Distance != d {
					return false
				}
			}

			return pq.IsEmpty()
		},
		gen.SliceOf(gen.Int64Range(-500, 500)),
	))

	properties.Property("updates keep the minimum on top", prop.ForAll(
		func(dists []int64, target int, nd int64) bool {
			if len(dists) == 0 {
				return true
			}
			pq := pqueue.New(len(dists))
			for v, d := range dists {
				pq.Insert(v, d)
			}
			v := target % len(dists)
			pq.UpdateDistance(v, nd)
			dists[v] = nd

			minD := dists[0]
			for _, d := range dists[1:] {
				if d < minD {
					minD = d
				}
			}
			top, ok := pq.Peek()

			return ok && top.Distance == minD
		},
		gen.SliceOf(gen.Int64Range(0, 1000)),
		gen.IntRange(0, 1000),
		gen.Int64Range(0, 1000),
	))

	properties.TestingRun(t)
}
