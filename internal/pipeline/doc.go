// Package pipeline chains remapping stages.
//
// A scalar is folded through the stages one MapValue at a time. An interval
// set is expanded stage by stage: every interval in the working set is split
// by the current stage and all of the pieces feed the next one. Because the
// stages are immutable, independent inputs can be mapped concurrently with
// MapIntervalsParallel without changing the result.
package pipeline
