package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"range-remapper/internal/interval"
)

// Ranges implements subcommands.Command for the "ranges" command.
type Ranges struct {
	all       bool
	normalize bool
	workers   int
}

// Name implements subcommands.Command.Name.
func (*Ranges) Name() string {
	return "ranges"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Ranges) Synopsis() string {
	return "map seed (start, length) pairs as intervals through the pipeline"
}

// Usage implements subcommands.Command.Usage.
func (*Ranges) Usage() string {
	return `ranges [flags] <definition> - read seeds as (start, length) pairs and print the lowest reachable value.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Ranges) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.all, "all", false, "print every resulting interval.")
	f.BoolVar(&r.normalize, "normalize", false, "merge overlapping intervals after every stage.")
	f.IntVar(&r.workers, "workers", -1, "concurrent workers, 0 maps sequentially. Defaults to the configuration value.")
}

// Execute implements subcommands.Command.Execute.
func (r *Ranges) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	env := envFrom(args)

	file, p, err := env.build(f.Arg(0), r.normalize)
	if err != nil {
		return env.fail(err)
	}

	seeds, err := file.SeedIntervals()
	if err != nil {
		return env.fail(err)
	}

	workers := r.workers
	if workers < 0 {
		workers = env.Config.Workers
	}

	var out []interval.Interval

	if workers > 0 {
		out, err = p.MapIntervalsParallel(ctx, seeds, workers)
		if err != nil {
			return env.fail(err)
		}
	} else {
		out = p.MapIntervals(seeds)
	}

	env.Log.WithFields(logrus.Fields{
		"inputs":  len(seeds),
		"outputs": len(out),
		"workers": workers,
	}).Debug("intervals mapped")

	if r.all {
		for _, iv := range out {
			fmt.Fprintln(env.Out, iv)
		}
	}

	lowest, ok := interval.MinStart(out)
	if !ok {
		return env.fail(fmt.Errorf("%s has no seed intervals", f.Arg(0)))
	}

	fmt.Fprintf(env.Out, "lowest: %d\n", lowest)

	return subcommands.ExitSuccess
}
