// Package cli implements the range-remapper subcommands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"range-remapper/internal/config"
	"range-remapper/internal/mapping"
	"range-remapper/internal/pipeline"
)

// Name is the program name used in usage output.
const Name = "range-remapper"

// Env is handed to every command as its first Execute argument.
type Env struct {
	Config *config.Config
	Log    *logrus.Logger
	Out    io.Writer
}

// forEachCmd invokes the passed callback for each command.
func forEachCmd(cdr *subcommands.Commander, cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(cdr.HelpCommand(), "")
	cb(cdr.FlagsCommand(), "")
	cb(cdr.CommandsCommand(), "")

	cb(new(Scalar), "mapping")
	cb(new(Ranges), "mapping")
	cb(new(Trace), "mapping")

	cb(new(Check), "definitions")
	cb(new(Convert), "definitions")
}

// Run parses args (without the program name), runs the selected command and
// returns its exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "configuration file (.toml or .yaml).")
	logLevel := fs.String("log-level", "", "log level, overrides the configuration file.")
	logFormat := fs.String("log-format", "", "log format (text or json), overrides the configuration file.")
	reorder := fs.Bool("reorder", false, "run stages in category order instead of declared order.")

	cdr := subcommands.NewCommander(fs, Name)
	cdr.Output = stdout
	cdr.Error = stderr

	forEachCmd(cdr, cdr.Register)

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	conf := config.Default()

	if *configPath != "" {
		var err error

		conf, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return int(subcommands.ExitFailure)
		}
	}

	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}

	if *logFormat != "" {
		conf.LogFormat = *logFormat
	}

	if *reorder {
		conf.Reorder = true
	}

	if err := conf.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return int(subcommands.ExitUsageError)
	}

	env := &Env{
		Config: conf,
		Log:    conf.Logger(stderr),
		Out:    stdout,
	}

	return int(cdr.Execute(ctx, env))
}

// envFrom extracts the Env passed by Run.
func envFrom(args []any) *Env {
	if len(args) > 0 {
		if env, ok := args[0].(*Env); ok {
			return env
		}
	}

	return &Env{
		Config: config.Default(),
		Log:    config.Default().Logger(os.Stderr),
		Out:    os.Stdout,
	}
}

// load reads a definition, honoring a forced format from the configuration.
func (e *Env) load(path string) (*mapping.File, error) {
	format, forced := e.Config.DefinitionFormat()
	if !forced {
		return mapping.LoadFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	return mapping.Parse(data, format)
}

// build loads and builds a definition, logging its warnings.
func (e *Env) build(path string, normalize bool) (*mapping.File, *pipeline.Pipeline, error) {
	f, err := e.load(path)
	if err != nil {
		return nil, nil, err
	}

	if e.Config.Reorder {
		var reordered bool

		f.Stages, reordered, err = mapping.OrderStages(f.Stages)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		if reordered {
			e.Log.WithField("file", path).Info("stages reordered by category")
		}
	}

	opts := []pipeline.Option{pipeline.WithLogger(e.Log.WithField("file", path))}
	if normalize || e.Config.Normalize {
		opts = append(opts, pipeline.WithNormalize())
	}

	p, diags, err := mapping.Build(f, opts...)
	if diags != nil {
		for _, d := range diags.Warnings {
			e.Log.WithField("code", d.Code).Warn(d.String())
		}
	}

	if err != nil {
		return nil, nil, err
	}

	e.Log.WithFields(logrus.Fields{
		"file":   path,
		"stages": p.Len(),
		"seeds":  len(f.Seeds),
	}).Debug("pipeline built")

	return f, p, nil
}

// fail logs err and returns the failure status.
func (e *Env) fail(err error) subcommands.ExitStatus {
	e.Log.WithError(err).Error("command failed")
	return subcommands.ExitFailure
}
