// Package diagnostic provides structured errors, warnings and notes
// produced while checking stage definitions.
//
// Key capabilities:
//   - Overlapping and overflowing entry reports
//   - Broken stage chains with "did you mean" suggestions
//   - Notes on how a definition was normalized before building
package diagnostic
