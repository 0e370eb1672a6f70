package sort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{7}, []int{7}},
		{"sample", []int{200, 100, 500, 300, 400}, []int{100, 200, 300, 400, 500}},
		{"reverse", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{3, 1, 3, 2}, []int{1, 2, 3, 3}},
		{"negative", []int{0, -784, 9845, -5467984, 42}, []int{-5467984, -784, 0, 42, 9845}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Ints(c.in)
			assert.Equal(t, c.want, c.in)
		})
	}
}

func TestNilSlice(t *testing.T) {
	var a []int
	Ints(a)
	assert.Nil(t, a)
	assert.True(t, IsSorted(IntArray(a)))
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 60; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(20) - 10
		}
		before := count(data)

		Ints(data)

		require.True(t, IsSorted(IntArray(data)), "n=%d: %v", n, data)
		for i := 0; i+1 < len(data); i++ {
			require.LessOrEqual(t, data[i], data[i+1])
		}
		require.Equal(t, before, count(data), "n=%d: elements changed", n)
	}
}

func TestIdempotent(t *testing.T) {
	data := []int{74, 59, 238, -784, 9845, 959, 905, 0, 0, 42, 7586, -5467984, 7586}
	Ints(data)
	once := append([]int(nil), data...)
	Ints(data)
	assert.Equal(t, once, data)
}

type tagged struct {
	key int
	tag string
}

func TestStable(t *testing.T) {
	in := []tagged{{3, "a"}, {1, "b"}, {3, "c"}, {2, "d"}, {1, "e"}, {3, "f"}}
	SliceFunc(in, func(a, b tagged) bool { return a.key < b.key })

	want := []tagged{{1, "b"}, {1, "e"}, {2, "d"}, {3, "a"}, {3, "c"}, {3, "f"}}
	assert.Equal(t, want, in)
}

func TestStableRandom(t *testing.T) {
	type item struct{ key, pos int }

	r := rand.New(rand.NewSource(7))
	items := make([]item, 200)
	for i := range items {
		// pos records the original position
		items[i] = item{key: r.Intn(5), pos: i}
	}
	SliceFunc(items, func(a, b item) bool { return a.key < b.key })

	for i := 0; i+1 < len(items); i++ {
		require.LessOrEqual(t, items[i].key, items[i+1].key)
		if items[i].key == items[i+1].key {
			require.Less(t, items[i].pos, items[i+1].pos, "equal keys reordered at %d", i)
		}
	}
}

func TestStats(t *testing.T) {
	sorted := IntArray{1, 2, 3, 4, 5}
	st := SortStats(sorted)
	assert.Equal(t, Stats{Passes: 1, Comparisons: 4, Swaps: 0}, st)

	reverse := IntArray{5, 4, 3, 2, 1}
	st = SortStats(reverse)
	assert.Equal(t, 10, st.Swaps)
	assert.Equal(t, 4, st.Passes)
	assert.Equal(t, 10, st.Comparisons)
	assert.Equal(t, IntArray{1, 2, 3, 4, 5}, reverse)

	assert.Equal(t, Stats{}, SortStats(IntArray{}))
	assert.Equal(t, Stats{}, SortStats(IntArray{7}))
}

func TestGeneric(t *testing.T) {
	fs := []float64{2.5, -1, 0, 2.25}
	Float64s(fs)
	assert.Equal(t, []float64{-1, 0, 2.25, 2.5}, fs)

	ss := []string{"pear", "apple", "fig"}
	Strings(ss)
	assert.Equal(t, []string{"apple", "fig", "pear"}, ss)

	us := []uint8{9, 3, 200, 0}
	Slice(us)
	assert.Equal(t, []uint8{0, 3, 9, 200}, us)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(IntArray{}))
	assert.True(t, IsSorted(IntArray{1, 1, 2}))
	assert.False(t, IsSorted(IntArray{2, 1}))
}

func count(a []int) map[int]int {
	m := make(map[int]int)
	for _, v := range a {
		m[v]++
	}
	return m
}
