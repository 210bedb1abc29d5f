package main

import (
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "parnas",
	Short:   "Select representative tips from a weighted phylogenetic tree",
	Long:    `parnas computes a p-median selection of tip labels from a Newick tree, minimising the total distance from every other tip to its nearest selection.`,
	Version: appVersion,
	// A failed run prints only cobra's one-line "Error: ..." message.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newMedoidsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
