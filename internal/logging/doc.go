// Package logging configures the zerolog structured logger cmd/parnas uses
// for diagnostic output: one JSON object per line by default, and
// human-readable console output when writing to an *os.File that is a
// terminal.
package logging
