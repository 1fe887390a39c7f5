// Package rangemap implements one remapping stage.
//
// A stage is a set of entries, each translating a source interval onto a
// destination interval of the same length. Values that no entry covers map
// to themselves, so both MapValue and MapInterval are total.
//
// Interval mapping splits the query at entry boundaries: covered pieces are
// translated and the gaps between them pass through unchanged. The work done
// is proportional to the number of entries the query touches, never to its
// length.
package rangemap
