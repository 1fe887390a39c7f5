package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"range-remapper/internal/mapping"
)

// Convert implements subcommands.Command for the "convert" command.
type Convert struct {
	to     string
	output string
}

// Name implements subcommands.Command.Name.
func (*Convert) Name() string {
	return "convert"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Convert) Synopsis() string {
	return "rewrite a definition in another format"
}

// Usage implements subcommands.Command.Usage.
func (*Convert) Usage() string {
	return `convert [-to <format> | -o <path>] <definition> - rewrite the definition as text, yaml or toml.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Convert) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "yaml", "output format: text, yaml or toml.")
	f.StringVar(&c.output, "o", "", "write to this file instead of stdout, choosing the format from its extension.")
}

// Execute implements subcommands.Command.Execute.
func (c *Convert) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	env := envFrom(args)

	file, err := env.load(f.Arg(0))
	if err != nil {
		return env.fail(err)
	}

	if c.output != "" {
		if err := mapping.WriteFile(file, c.output); err != nil {
			return env.fail(err)
		}

		env.Log.WithField("path", c.output).Info("definition written")

		return subcommands.ExitSuccess
	}

	format, err := mapping.ParseFormat(c.to)
	if err != nil {
		return env.fail(err)
	}

	data, err := mapping.Marshal(file, format)
	if err != nil {
		return env.fail(err)
	}

	if _, err := env.Out.Write(data); err != nil {
		return env.fail(err)
	}

	return subcommands.ExitSuccess
}
