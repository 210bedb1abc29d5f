// Command parnas selects a small set of representative tips ("medoids")
// from a weighted phylogenetic tree, minimising the aggregate distance from
// every other tip to its nearest representative.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
