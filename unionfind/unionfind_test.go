package unionfind_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlgraph/unionfind"
)

func TestUnionFind_Singletons(t *testing.T) {
	uf := unionfind.New(4)
	assert.Equal(t, 4, uf.Count())
	assert.Equal(t, 4, uf.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.Equal(t, 1, uf.Size(i))
	}
	assert.False(t, uf.Connected(0, 1))
}

func TestUnionFind_Unite(t *testing.T) {
	uf := unionfind.New(5)

	assert.True(t, uf.Unite(0, 1))
	assert.True(t, uf.Unite(2, 3))
	assert.True(t, uf.Unite(1, 3))
	assert.False(t, uf.Unite(0, 2), "already joined")

	assert.True(t, uf.Connected(0, 3))
	assert.False(t, uf.Connected(0, 4))
	assert.Equal(t, 2, uf.Count())
	assert.Equal(t, 4, uf.Size(2))
	assert.Equal(t, 1, uf.Size(4))
}

func TestUnionFind_TieAttachesSecondUnderFirst(t *testing.T) {
	uf := unionfind.New(2)
	uf.Unite(0, 1)
	assert.Equal(t, 0, uf.Find(1))

	// rank(0)=1 now beats the fresh singleton
	uf2 := unionfind.New(3)
	uf2.Unite(0, 1)
	uf2.Unite(2, 0)
	assert.Equal(t, 0, uf2.Find(2))
}

func TestUnionFind_Empty(t *testing.T) {
	uf := unionfind.New(-3)
	assert.Equal(t, 0, uf.Len())
	assert.Equal(t, 0, uf.Count())
}

// TestUnionFindProperties compares against a naive label-relabel reference.
func TestUnionFindProperties(t *testing.T) {
	const n = 12
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("matches naive labelling", prop.ForAll(
		func(pairs []int) bool {
			uf := unionfind.New(n)
			label := make([]int, n)
			for i := range label {
				label[i] = i
			}
			for i := 0; i+1 < len(pairs); i += 2 {
				x, y := pairs[i], pairs[i+1]
				merged := uf.Unite(x, y)
				if merged != (label[x] != label[y]) {
					return false
				}
				old, nw := label[y], label[x]
				for j := range label {
					if label[j] == old {
						label[j] = nw
					}
				}
			}

			distinct := map[int]struct{}{}
			for i := 0; i < n; i++ {
				distinct[label[i]] = struct{}{}
				for j := 0; j < n; j++ {
					if uf.Connected(i, j) != (label[i] == label[j]) {
						return false
					}
				}
			}

			return uf.Count() == len(distinct)
		},
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.TestingRun(t)
}
