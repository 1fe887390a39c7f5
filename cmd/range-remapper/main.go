// Package main provides the CLI entrypoint for range-remapper.
//
// range-remapper loads a chain of range-remapping stages and:
//   - Maps single values through every stage (scalar, trace)
//   - Maps (start, length) intervals without enumerating them (ranges)
//   - Validates and converts stage definitions (check, convert)
package main

import (
	"context"
	"os"

	"range-remapper/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
