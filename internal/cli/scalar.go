package cli

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/google/subcommands"
)

// Scalar implements subcommands.Command for the "scalar" command.
type Scalar struct {
	all bool
}

// Name implements subcommands.Command.Name.
func (*Scalar) Name() string {
	return "scalar"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Scalar) Synopsis() string {
	return "map every seed value through the pipeline"
}

// Usage implements subcommands.Command.Usage.
func (*Scalar) Usage() string {
	return `scalar [flags] <definition> - map each seed as a single value and print the lowest result.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Scalar) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.all, "all", false, "print every seed and its result.")
}

// Execute implements subcommands.Command.Execute.
func (s *Scalar) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	env := envFrom(args)

	file, p, err := env.build(f.Arg(0), false)
	if err != nil {
		return env.fail(err)
	}

	if len(file.Seeds) == 0 {
		return env.fail(fmt.Errorf("%s has no seeds", f.Arg(0)))
	}

	results := p.MapScalars(file.Seeds)

	if s.all {
		for i, seed := range file.Seeds {
			fmt.Fprintf(env.Out, "%d -> %d\n", seed, results[i])
		}
	}

	fmt.Fprintf(env.Out, "lowest: %d\n", slices.Min(results))

	return subcommands.ExitSuccess
}
