// Package interval provides the half-open uint64 interval used by every
// stage of the remapping pipeline.
//
// Intervals are values: operations return new intervals and never mutate
// their receiver. Arithmetic on bounds is checked, since tables routinely
// describe ranges of several billion values close to the top of the
// uint64 domain.
package interval
