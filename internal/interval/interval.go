package interval

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when an interval end does not fit in uint64.
var ErrOverflow = errors.New("interval end overflows uint64")

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  uint64
	Length uint64
}

// New returns the interval [start, start+length), rejecting ends that would
// not fit in uint64.
func New(start, length uint64) (Interval, error) {
	if _, ok := AddChecked(start, length); !ok {
		return Interval{}, fmt.Errorf("%w: start %d, length %d", ErrOverflow, start, length)
	}

	return Interval{Start: start, Length: length}, nil
}

// FromBounds returns [start, end). An end below start yields an empty interval.
func FromBounds(start, end uint64) Interval {
	if end <= start {
		return Interval{Start: start}
	}

	return Interval{Start: start, Length: end - start}
}

// AddChecked returns a+b and whether the sum fits in uint64.
func AddChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// End returns the exclusive upper bound. Intervals built through New never
// overflow; for anything else the end saturates at math.MaxUint64.
func (i Interval) End() uint64 {
	end, ok := AddChecked(i.Start, i.Length)
	if !ok {
		return math.MaxUint64
	}

	return end
}

// Fits reports whether the end of i fits in uint64, which holds for every
// interval built through New.
func (i Interval) Fits() bool {
	_, ok := AddChecked(i.Start, i.Length)
	return ok
}

// IsEmpty returns true if the interval holds no values.
func (i Interval) IsEmpty() bool {
	return i.Length == 0
}

// Contains returns true if v lies in [Start, End).
func (i Interval) Contains(v uint64) bool {
	return i.Start <= v && v-i.Start < i.Length
}

// Overlaps returns true if the two intervals share at least one value.
// Touching boundaries do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End() && i.End() > o.Start
}

// Intersection returns the shared sub-interval and whether it is non-empty.
func (i Interval) Intersection(o Interval) (Interval, bool) {
	if !i.Overlaps(o) {
		return Interval{}, false
	}

	return FromBounds(max(i.Start, o.Start), min(i.End(), o.End())), true
}

// Rebase moves the interval from the frame starting at from to the frame
// starting at to, keeping its length: the result starts at to+(Start-from).
// Start must not be below from.
func (i Interval) Rebase(from, to uint64) Interval {
	return Interval{Start: to + (i.Start - from), Length: i.Length}
}

// String formats the interval as [start,end).
func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End())
}
