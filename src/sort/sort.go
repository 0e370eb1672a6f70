package sort

import "golang.org/x/exp/constraints"

type Sorter interface {
	Len() int
	// Less reports whether element i must sort before element j.
	Less(i, j int) bool
	Swap(i, j int)
}

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type Float64Array []float64

func (p Float64Array) Len() int { return len(p) }

func (p Float64Array) Less(i, j int) bool { return p[i] < p[j] }

func (p Float64Array) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type StringArray []string

func (p StringArray) Len() int { return len(p) }

func (p StringArray) Less(i, j int) bool { return p[i] < p[j] }

func (p StringArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Stats counts the work done by one call of SortStats.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort orders data in place by swapping adjacent elements that are strictly
// out of order. Equal elements keep their relative order.
func Sort(data Sorter) {
	SortStats(data)
}

// SortStats is Sort, returning how many passes, comparisons and swaps it took.
// A pass without swaps ends the sort early.
func SortStats(data Sorter) (st Stats) {
	n := data.Len()
	for pass := 1; pass < n; pass++ {
		st.Passes++
		swapped := false
		// elements above n-pass are already in their final place
		for i := 0; i < n-pass; i++ {
			st.Comparisons++
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

// Ints sorts a slice of ints in increasing order.
func Ints(a []int) { Sort(IntArray(a)) }

// Float64s sorts a slice of float64s in increasing order.
func Float64s(a []float64) { Sort(Float64Array(a)) }

// Strings sorts a slice of strings in increasing order.
func Strings(a []string) { Sort(StringArray(a)) }

type ordered[E constraints.Ordered] []E

func (p ordered[E]) Len() int { return len(p) }

func (p ordered[E]) Less(i, j int) bool { return p[i] < p[j] }

func (p ordered[E]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Slice sorts any slice of an ordered element type.
func Slice[E constraints.Ordered](s []E) {
	Sort(ordered[E](s))
}

type lessFunc[E any] struct {
	s    []E
	less func(a, b E) bool
}

func (p lessFunc[E]) Len() int { return len(p.s) }

func (p lessFunc[E]) Less(i, j int) bool { return p.less(p.s[i], p.s[j]) }

func (p lessFunc[E]) Swap(i, j int) { p.s[i], p.s[j] = p.s[j], p.s[i] }

// SliceFunc sorts s with less, which must be a strict ordering: it has to
// return false for equal elements or the sort is no longer stable.
func SliceFunc[E any](s []E, less func(a, b E) bool) {
	Sort(lessFunc[E]{s, less})
}
