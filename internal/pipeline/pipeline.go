package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"range-remapper/internal/interval"
	"range-remapper/internal/rangemap"
)

// Stage is one named step of a pipeline.
type Stage struct {
	// Name describes the step, e.g. "seed-to-soil". It may be empty.
	Name string
	// Map holds the step's entries.
	Map *rangemap.RangeMap
}

// Step records the value entering and leaving one stage.
type Step struct {
	Stage string
	In    uint64
	Out   uint64
}

// Pipeline applies its stages in order. It is immutable once built and every
// method is a pure function of its arguments.
type Pipeline struct {
	stages    []Stage
	normalize bool
	log       logrus.FieldLogger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNormalize merges overlapping and adjacent intervals after every stage.
// The set of covered values is unchanged; only its representation shrinks.
func WithNormalize() Option {
	return func(p *Pipeline) {
		p.normalize = true
	}
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New builds a pipeline from stages, applied in the given order. A nil stage
// map is treated as the identity.
func New(stages []Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: make([]Stage, 0, len(stages)),
		log:    discardLogger(),
	}

	for _, s := range stages {
		if s.Map == nil {
			s.Map = rangemap.Identity()
		}

		p.stages = append(p.stages, s)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// FromMaps builds a pipeline of unnamed stages.
func FromMaps(maps ...*rangemap.RangeMap) *Pipeline {
	stages := make([]Stage, 0, len(maps))
	for _, m := range maps {
		stages = append(stages, Stage{Map: m})
	}

	return New(stages)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Stages returns a copy of the stage list.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// MapScalar passes v through every stage.
func (p *Pipeline) MapScalar(v uint64) uint64 {
	for _, s := range p.stages {
		v = s.Map.MapValue(v)
	}

	return v
}

// MapScalars maps each value independently.
func (p *Pipeline) MapScalars(vs []uint64) []uint64 {
	out := make([]uint64, len(vs))
	for i, v := range vs {
		out[i] = p.MapScalar(v)
	}

	return out
}

// Trace returns the path of v through every stage.
func (p *Pipeline) Trace(v uint64) []Step {
	steps := make([]Step, 0, len(p.stages))

	for _, s := range p.stages {
		out := s.Map.MapValue(v)
		steps = append(steps, Step{Stage: s.Name, In: v, Out: out})
		v = out
	}

	return steps
}

// MapInterval passes one interval through every stage.
func (p *Pipeline) MapInterval(in interval.Interval) []interval.Interval {
	return p.MapIntervals([]interval.Interval{in})
}

// MapIntervals passes a set of intervals through every stage. At each stage
// every interval of the working set is mapped and all the pieces become the
// next working set. Pieces are not merged unless the pipeline was built with
// WithNormalize, so the result may contain overlapping intervals.
//
// Every input end must fit in uint64 (see interval.New); MapIntervals panics
// otherwise.
func (p *Pipeline) MapIntervals(ins []interval.Interval) []interval.Interval {
	cur := make([]interval.Interval, 0, len(ins))
	for _, in := range ins {
		if in.IsEmpty() {
			continue
		}

		if !in.Fits() {
			panic(fmt.Sprintf("pipeline: mapping %d+%d: %v", in.Start, in.Length, interval.ErrOverflow))
		}

		cur = append(cur, in)
	}

	if p.normalize {
		cur = interval.Normalize(cur)
	}

	for _, s := range p.stages {
		next := make([]interval.Interval, 0, len(cur))
		for _, in := range cur {
			next = s.Map.AppendMapped(next, in)
		}

		if p.normalize {
			next = interval.Normalize(next)
		}

		p.log.WithFields(logrus.Fields{
			"stage": s.Name,
			"in":    len(cur),
			"out":   len(next),
		}).Debug("stage mapped")

		cur = next
	}

	return cur
}

// MapIntervalsParallel maps every input interval concurrently, using at most
// workers goroutines (no limit when workers <= 0), and returns the same
// result as MapIntervals. Inputs whose end overflows are rejected with
// interval.ErrOverflow before any work starts; otherwise the only possible
// error is cancellation of ctx.
func (p *Pipeline) MapIntervalsParallel(ctx context.Context, ins []interval.Interval, workers int) ([]interval.Interval, error) {
	for i, in := range ins {
		if !in.Fits() {
			return nil, fmt.Errorf("input %d [%d+%d]: %w", i, in.Start, in.Length, interval.ErrOverflow)
		}
	}

	results := make([][]interval.Interval, len(ins))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, in := range ins {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = p.MapIntervals([]interval.Interval{in})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("mapping %d intervals: %w", len(ins), err)
	}

	var out []interval.Interval
	for _, r := range results {
		out = append(out, r...)
	}

	if p.normalize {
		out = interval.Normalize(out)
	}

	return out, nil
}
