package pullseq_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/pullseq"
)

func TestMap(t *testing.T) {
	t.Run("TransformsEachItem", func(t *testing.T) {
		seq := pullseq.Map(pullseq.FromSlice([]int{1, 2, 3}), func(v int) int { return v * 10 })
		require.Equal(t, []int{10, 20, 30}, pullseq.Collect(seq))
	})

	t.Run("ChangesItemType", func(t *testing.T) {
		seq := pullseq.Map(pullseq.FromSlice([]int{1, 2, 3}), strconv.Itoa)
		require.Equal(t, []string{"1", "2", "3"}, pullseq.Collect(seq))
	})

	t.Run("Lazy", func(t *testing.T) {
		calls := 0
		seq := pullseq.Map(pullseq.Range(0, 100, 1), func(v int) int {
			calls++
			return v
		})
		seq.Next()
		seq.Next()
		assert.Equal(t, 2, calls, "transform runs once per pull, never ahead")
	})
}

func TestFilter(t *testing.T) {
	seq := pullseq.Filter(pullseq.Range(0, 10, 1), func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{0, 2, 4, 6, 8}, pullseq.Collect(seq))

	t.Run("DrainsSkippedItemsInternally", func(t *testing.T) {
		seq := pullseq.Filter(pullseq.Range(0, 10, 1), func(v int) bool { return v == 7 })
		v, ok := seq.Next()
		require.True(t, ok)
		assert.Equal(t, 7, v)
		_, ok = seq.Next()
		assert.False(t, ok)
	})
}

func TestFilterMap(t *testing.T) {
	// Keep even numbers, halved, in one pass.
	seq := pullseq.FilterMap(pullseq.Range(0, 10, 1), func(v int) (int, bool) {
		return v / 2, v%2 == 0
	})
	require.Equal(t, []int{0, 1, 2, 3, 4}, pullseq.Collect(seq))
}

func TestChain(t *testing.T) {
	t.Run("FirstThenSecond", func(t *testing.T) {
		seq := pullseq.Chain(pullseq.FromSlice([]int{1, 2}), pullseq.FromSlice([]int{3, 4, 5}))
		require.Equal(t, []int{1, 2, 3, 4, 5}, pullseq.Collect(seq))
	})

	t.Run("LengthIsSumOfLengths", func(t *testing.T) {
		a := pullseq.Range(0, 4, 1)
		b := pullseq.Range(0, 7, 1)
		assert.Equal(t, 4+7, pullseq.Count(pullseq.Chain(a, b)))
	})

	t.Run("EmptySides", func(t *testing.T) {
		seq := pullseq.Chain(pullseq.Empty[int](), pullseq.FromSlice([]int{1}))
		require.Equal(t, []int{1}, pullseq.Collect(seq))

		seq = pullseq.Chain(pullseq.FromSlice([]int{1}), pullseq.Empty[int]())
		require.Equal(t, []int{1}, pullseq.Collect(seq))
	})

	t.Run("NeverRevisitsFirst", func(t *testing.T) {
		// A finite generator would misbehave if pulled after its end.
		n := 0
		first := pullseq.FiniteGenerator(func() (int, bool) {
			n++
			return n, n <= 2
		})
		seq := pullseq.Chain(first, pullseq.FromSlice([]int{10, 11}))
		require.Equal(t, []int{1, 2, 10, 11}, pullseq.Collect(seq))
		assert.Equal(t, 3, n, "first side pulled exactly to exhaustion")
	})
}

func TestZip(t *testing.T) {
	t.Run("PairsInLockstep", func(t *testing.T) {
		seq := pullseq.Zip(pullseq.FromSlice([]int{1, 2, 3}), pullseq.FromSlice([]string{"a", "b", "c"}))
		require.Equal(t, []pullseq.Pair[int, string]{
			{V1: 1, V2: "a"},
			{V1: 2, V2: "b"},
			{V1: 3, V2: "c"},
		}, pullseq.Collect(seq))
	})

	t.Run("StopsAtShorterSide", func(t *testing.T) {
		long := pullseq.Range(0, 20, 1)
		short := pullseq.Range(0, 10, 1)
		assert.Equal(t, 10, pullseq.Count(pullseq.Zip(long, short)))

		long = pullseq.Range(0, 20, 1)
		short = pullseq.Range(0, 10, 1)
		assert.Equal(t, 10, pullseq.Count(pullseq.Zip(short, long)))
	})

	t.Run("BoundsAnInfiniteSide", func(t *testing.T) {
		seq := pullseq.Zip(pullseq.Repeat("x"), pullseq.Range(0, 3, 1))
		assert.Equal(t, 3, pullseq.Count(seq))
	})
}

func TestEnumerate(t *testing.T) {
	seq := pullseq.Enumerate(pullseq.FromSlice([]string{"a", "b", "c"}))
	require.Equal(t, []pullseq.Pair[int, string]{
		{V1: 0, V2: "a"},
		{V1: 1, V2: "b"},
		{V1: 2, V2: "c"},
	}, pullseq.Collect(seq))
}

func TestFlatten(t *testing.T) {
	t.Run("RemovesOneLevel", func(t *testing.T) {
		nested := pullseq.Map(pullseq.FromSlice([][]int{{1, 2}, {3}, {}, {4, 5}}), pullseq.FromSlice[int])
		require.Equal(t, []int{1, 2, 3, 4, 5}, pullseq.Collect(pullseq.Flatten(nested)))
	})

	t.Run("AllInnersEmpty", func(t *testing.T) {
		nested := pullseq.Map(pullseq.FromSlice([][]int{{}, {}}), pullseq.FromSlice[int])
		assert.Empty(t, pullseq.Collect(pullseq.Flatten(nested)))
	})
}

func TestInspect(t *testing.T) {
	var seen []int
	seq := pullseq.Inspect(pullseq.FromSlice([]int{1, 2, 3}), func(v int) {
		seen = append(seen, v)
	})
	require.Equal(t, []int{1, 2, 3}, pullseq.Collect(seq))
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestIntersperse(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		seq := pullseq.Intersperse(pullseq.Range(0, 10, 1), -1)
		require.Equal(t,
			[]int{0, -1, 1, -1, 2, -1, 3, -1, 4, -1, 5, -1, 6, -1, 7, -1, 8, -1, 9},
			pullseq.Collect(seq))
	})

	t.Run("LengthIsTwiceMinusOne", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 13} {
			seq := pullseq.Intersperse(pullseq.Range(0, n, 1), 0)
			assert.Equal(t, 2*n-1, pullseq.Count(seq))
		}
	})

	t.Run("EmptyAndSingle", func(t *testing.T) {
		assert.Empty(t, pullseq.Collect(pullseq.Intersperse(pullseq.Empty[int](), -1)))
		require.Equal(t, []int{5}, pullseq.Collect(pullseq.Intersperse(pullseq.Once(5), -1)))
	})

	t.Run("SeparatorGenerationIsDeferred", func(t *testing.T) {
		calls := 0
		seq := pullseq.IntersperseWith(pullseq.FromSlice([]int{1, 2}), func() int {
			calls++
			return -calls
		})

		v, ok := seq.Next()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Zero(t, calls, "separator computed only when yielded")

		v, ok = seq.Next()
		require.True(t, ok)
		assert.Equal(t, -1, v)
		assert.Equal(t, 1, calls)

		v, ok = seq.Next()
		require.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = seq.Next()
		assert.False(t, ok)
		assert.Equal(t, 1, calls, "no separator after the last item")
	})
}
