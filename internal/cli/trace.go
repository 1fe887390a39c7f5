package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

// Trace implements subcommands.Command for the "trace" command.
type Trace struct{}

// Name implements subcommands.Command.Name.
func (*Trace) Name() string {
	return "trace"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Trace) Synopsis() string {
	return "show a value as it passes through each stage"
}

// Usage implements subcommands.Command.Usage.
func (*Trace) Usage() string {
	return `trace <definition> <value> - print the value entering and leaving every stage.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Trace) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Trace) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	env := envFrom(args)

	v, err := strconv.ParseUint(f.Arg(1), 10, 64)
	if err != nil {
		return env.fail(fmt.Errorf("invalid value %q: %w", f.Arg(1), err))
	}

	_, p, err := env.build(f.Arg(0), false)
	if err != nil {
		return env.fail(err)
	}

	for _, step := range p.Trace(v) {
		fmt.Fprintf(env.Out, "%s: %d -> %d\n", step.Stage, step.In, step.Out)
	}

	return subcommands.ExitSuccess
}
