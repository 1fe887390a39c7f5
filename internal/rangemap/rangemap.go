package rangemap

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"range-remapper/internal/interval"
)

// btreeDegree is small on purpose: stages hold tens of entries.
const btreeDegree = 8

// Entry maps [Source, Source+Length) onto [Destination, Destination+Length)
// by a constant offset.
type Entry struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// SourceInterval returns the domain of the entry.
func (e Entry) SourceInterval() interval.Interval {
	return interval.Interval{Start: e.Source, Length: e.Length}
}

// DestinationInterval returns the image of the entry.
func (e Entry) DestinationInterval() interval.Interval {
	return interval.Interval{Start: e.Destination, Length: e.Length}
}

// translate moves a sub-interval of the entry's domain into its image.
func (e Entry) translate(iv interval.Interval) interval.Interval {
	return iv.Rebase(e.Source, e.Destination)
}

// indexed keeps declaration order as a tie breaker so that entries sharing
// a source start are all retained by the tree.
type indexed struct {
	entry Entry
	pos   int
}

func lessIndexed(a, b indexed) bool {
	if a.entry.Source != b.entry.Source {
		return a.entry.Source < b.entry.Source
	}

	return a.pos < b.pos
}

// RangeMap is one stage: a set of entries with disjoint source intervals.
// Values outside every entry map to themselves. A RangeMap is immutable and
// safe for concurrent use.
type RangeMap struct {
	entries []Entry
	index   *btree.BTreeG[indexed]
}

// New builds a stage from entries. The entries are copied and zero-length
// entries are ignored. Source intervals must not overlap; use NewChecked to
// verify that.
func New(entries ...Entry) *RangeMap {
	m := &RangeMap{
		entries: append([]Entry(nil), entries...),
		index:   btree.NewG(btreeDegree, lessIndexed),
	}

	for i, e := range m.entries {
		if e.Length == 0 {
			continue
		}

		m.index.ReplaceOrInsert(indexed{entry: e, pos: i})
	}

	return m
}

// Identity returns a stage with no entries.
func Identity() *RangeMap {
	return New()
}

// Entries returns a copy of the stage entries in declaration order.
func (m *RangeMap) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of entries.
func (m *RangeMap) Len() int {
	return len(m.entries)
}

// MapInterval returns the image of in under this stage. Sub-ranges covered
// by an entry are translated, the rest pass through unchanged. The result is
// ordered by the source position each piece came from and its lengths sum
// to in.Length.
//
// The end of in must fit in uint64 (see interval.New); MapInterval panics
// otherwise.
func (m *RangeMap) MapInterval(in interval.Interval) []interval.Interval {
	return m.AppendMapped(nil, in)
}

// AppendMapped appends the image of in to dst and returns the extended
// slice. It has the same precondition as MapInterval.
func (m *RangeMap) AppendMapped(dst []interval.Interval, in interval.Interval) []interval.Interval {
	if in.IsEmpty() {
		return dst
	}

	if !in.Fits() {
		panic(fmt.Sprintf("rangemap: mapping %d+%d: %v", in.Start, in.Length, interval.ErrOverflow))
	}

	cursor := in.Start

	m.walk(in, func(e Entry, covered interval.Interval) {
		if covered.Start > cursor {
			dst = append(dst, interval.FromBounds(cursor, covered.Start))
		}

		dst = append(dst, e.translate(covered))
		cursor = max(cursor, covered.End())
	})

	if end := in.End(); cursor < end {
		dst = append(dst, interval.FromBounds(cursor, end))
	}

	return dst
}

// MapValue returns the image of a single value: the start of the image of
// [v, v+1).
func (m *RangeMap) MapValue(v uint64) uint64 {
	// No entry can contain the top of the domain since entry ends are
	// exclusive.
	if v == math.MaxUint64 {
		return v
	}

	var buf [1]interval.Interval

	out := m.AppendMapped(buf[:0], interval.Interval{Start: v, Length: 1})

	return out[0].Start
}

// walk calls fn, in ascending source order, for every entry whose domain
// overlaps in, along with the overlapping part of in.
//
// Entries are disjoint, so the only entry starting at or before in.Start
// that can overlap is the last one; the walk starts there and stops at the
// first entry starting at or past in.End().
func (m *RangeMap) walk(in interval.Interval, fn func(e Entry, covered interval.Interval)) {
	from := indexed{pos: -1}

	m.index.DescendLessOrEqual(indexed{entry: Entry{Source: in.Start}, pos: math.MaxInt}, func(it indexed) bool {
		from = it
		return false
	})

	to := indexed{entry: Entry{Source: in.End()}, pos: -1}

	m.index.AscendRange(from, to, func(it indexed) bool {
		if covered, ok := it.entry.SourceInterval().Intersection(in); ok {
			fn(it.entry, covered)
		}

		return true
	})
}
