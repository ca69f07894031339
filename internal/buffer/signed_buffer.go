// Package buffer implements a sparse sequence indexed by signed offsets.
//
// Unlike a slice, a SignedBuffer has no fixed origin: it grows both
// forward (extend at the high end) and backward (extend at the low
// end) as new data becomes available, which is what an alignment
// stream needs since cells can be produced on either side of the
// anchor the view was opened at.
package buffer

// SignedBuffer is a logical sequence over the half-open range [lo, hi)
// of signed indices. It is implemented as two slices: back holds
// indices >= 0 in natural order, front holds indices < 0 with front[0]
// corresponding to index -1, front[1] to index -2, and so on.
type SignedBuffer[T any] struct {
	front []T // front[k] is element at index -1-k
	back  []T // back[k] is element at index k
}

// New returns an empty SignedBuffer with bounds [0, 0).
func New[T any]() *SignedBuffer[T] {
	return &SignedBuffer[T]{}
}

// Bounds returns the half-open range of valid indices.
func (b *SignedBuffer[T]) Bounds() (lo, hi int) {
	return -len(b.front), len(b.back)
}

// Len returns hi - lo.
func (b *SignedBuffer[T]) Len() int {
	lo, hi := b.Bounds()
	return hi - lo
}

// Get returns the element at signed index i and whether it exists.
func (b *SignedBuffer[T]) Get(i int) (T, bool) {
	var zero T
	if i >= 0 {
		if i < len(b.back) {
			return b.back[i], true
		}
		return zero, false
	}
	k := -1 - i
	if k < len(b.front) {
		return b.front[k], true
	}
	return zero, false
}

// GetRange returns a slice of length hi-lo covering [lo, hi); indices
// outside the buffer's bounds yield a zero value with ok=false.
func (b *SignedBuffer[T]) GetRange(lo, hi int) []Maybe[T] {
	if hi < lo {
		hi = lo
	}
	out := make([]Maybe[T], 0, hi-lo)
	for i := lo; i < hi; i++ {
		v, ok := b.Get(i)
		out = append(out, Maybe[T]{Value: v, OK: ok})
	}
	return out
}

// Maybe is an optional value, used where Rust's Option<T> appears in
// the source design (gap rows, out-of-bounds reads).
type Maybe[T any] struct {
	Value T
	OK    bool
}

// ExtendEnd appends xs at the high end: new bounds become [lo, hi+len(xs)).
func (b *SignedBuffer[T]) ExtendEnd(xs []T) {
	b.back = append(b.back, xs...)
}

// ExtendFront prepends xs at the low end, in natural order: xs[0]
// becomes the new lo. New bounds become [lo-len(xs), hi).
func (b *SignedBuffer[T]) ExtendFront(xs []T) {
	// front[k] holds index -1-k, so prepending in natural order means
	// appending the reverse of xs to front.
	for i := len(xs) - 1; i >= 0; i-- {
		b.front = append(b.front, xs[i])
	}
}

// First returns the element at the lowest valid index, if any.
func (b *SignedBuffer[T]) First() (T, bool) {
	lo, hi := b.Bounds()
	if lo >= hi {
		var zero T
		return zero, false
	}
	return b.Get(lo)
}

// Last returns the element at the highest valid index, if any.
func (b *SignedBuffer[T]) Last() (T, bool) {
	lo, hi := b.Bounds()
	if lo >= hi {
		var zero T
		return zero, false
	}
	return b.Get(hi - 1)
}

// BinarySearch looks up key against proj(element) over the buffer's
// range, which must be non-decreasing where proj returns a defined
// value (nil projections are gap rows and are treated as
// indeterminate: the search steps around them to find the nearest
// bounding row with a defined projection).
//
// It returns (i, true) when proj(xs[i]) == key for some i, and
// (insertionPoint, false) otherwise, where insertionPoint is the index
// at which key would be inserted to keep the sequence ordered.
func (b *SignedBuffer[T]) BinarySearch(key int, proj func(T) (int, bool)) (int, bool) {
	lo, hi := b.Bounds()
	if lo >= hi {
		return lo, false
	}
	// projAt walks outward from i until it finds a defined projection,
	// preferring the nearer side; returns the defined value and the
	// index it was found at, or ok=false if the whole range is gaps.
	projAt := func(i int) (int, int, bool) {
		for d := 0; ; d++ {
			if i+d < hi {
				if v, k := b.mustGet(i + d); k {
					if val, ok := proj(v); ok {
						return val, i + d, true
					}
				}
			} else if i-d < lo {
				return 0, 0, false
			}
			if d > 0 && i-d >= lo {
				if v, k := b.mustGet(i - d); k {
					if val, ok := proj(v); ok {
						return val, i - d, true
					}
				}
			}
		}
	}
	l, h := lo, hi
	for l < h {
		mid := l + (h-l)/2
		val, foundAt, ok := projAt(mid)
		if !ok {
			// The whole buffer is gaps; nothing to compare against.
			return l, false
		}
		switch {
		case val == key:
			// foundAt may differ from mid if mid itself was a gap; walk
			// back to the first index in this range whose projection
			// equals key, to return a stable, minimal match index.
			return firstEqual(b, foundAt, key, proj), true
		case val < key:
			// foundAt can lie below mid (mid was a gap); the rows between
			// are gaps too, so always move past mid to keep shrinking.
			l = foundAt + 1
			if l <= mid {
				l = mid + 1
			}
		default:
			h = foundAt
			if h > mid {
				h = mid
			}
		}
	}
	return l, false
}

func (b *SignedBuffer[T]) mustGet(i int) (T, bool) {
	return b.Get(i)
}

func firstEqual[T any](b *SignedBuffer[T], i, key int, proj func(T) (int, bool)) int {
	lo, _ := b.Bounds()
	for i > lo {
		v, ok := b.Get(i - 1)
		if !ok {
			break
		}
		val, defined := proj(v)
		if !defined || val != key {
			break
		}
		i--
	}
	return i
}
