// Package render turns a medoid selection result back into human-facing
// output: a Newick string with the chosen tips marked, or an ANSI-coloured
// indented tree listing, both rendered to an io.Writer or returned as a
// string for a CLI to print.
package render
