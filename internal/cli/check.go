package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"range-remapper/internal/mapping"
)

// Check implements subcommands.Command for the "check" command.
type Check struct{}

// Name implements subcommands.Command.Name.
func (*Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Check) Synopsis() string {
	return "validate a definition and print its diagnostics"
}

// Usage implements subcommands.Command.Usage.
func (*Check) Usage() string {
	return `check <definition> - report configuration errors, warnings and stage ordering.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Check) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Check) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	env := envFrom(args)

	file, err := env.load(f.Arg(0))
	if err != nil {
		return env.fail(err)
	}

	diags := mapping.Validate(file)
	for _, d := range diags.All() {
		fmt.Fprintf(env.Out, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return subcommands.ExitFailure
	}

	fmt.Fprintln(env.Out, "ok")

	return subcommands.ExitSuccess
}
