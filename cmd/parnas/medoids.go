package main

import (
	"fmt"
	"io"
	"os"

	"github.com/evobio-go/parnas/config"
	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/internal/logging"
	"github.com/evobio-go/parnas/medoid"
	"github.com/evobio-go/parnas/rawtree"
	"github.com/evobio-go/parnas/selectspec"
	"github.com/evobio-go/parnas/treeio/align"
	"github.com/evobio-go/parnas/treeio/newick"
	"github.com/evobio-go/parnas/treeio/render"
	"github.com/spf13/cobra"
)

func newMedoidsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medoids",
		Short: "Select p representative tips from a tree",
		RunE:  runMedoids,
	}

	flags := cmd.Flags()
	flags.String("input-tree", "-", "path to a Newick tree file, or '-' for stdin")
	flags.String("alignment", "", "optional path to a FASTA alignment used to re-weight edges")
	flags.Int("p", 1, "number of medoids to select")
	flags.Float64("radius", 0, "coverage radius (0 means unset; use --similarity instead)")
	flags.Float64("similarity", 0, "similarity percent in (0,100], converted to a radius via the alignment length")
	flags.StringSlice("exclude", nil, "regex patterns naming leaves that may not be chosen as medoids")
	flags.StringSlice("fully-exclude", nil, "regex patterns naming leaves to drop from the tree entirely")
	flags.StringSlice("prior-covered", nil, "regex patterns naming leaves already covered by an existing center")
	flags.String("output-format", "ansi", "output format: ansi, newick, or json")

	return cmd
}

func runMedoids(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	tree, alignmentLength, err := readInputs(cmd, cfg)
	if err != nil {
		return err
	}

	spec := selectspec.Spec{
		P:               cfg.P,
		Exclude:         cfg.Exclude,
		FullyExclude:    cfg.FullyExclude,
		PriorCovered:    cfg.PriorCovered,
		AlignmentLength: alignmentLength,
	}
	if cfg.Similarity > 0 {
		spec.SimilarityPercent = &cfg.Similarity
	} else if cfg.Radius > 0 {
		spec.Radius = &cfg.Radius
	}

	resolved, err := selectspec.Resolve(spec, tree)
	if err != nil {
		return err
	}
	for _, w := range resolved.Warnings {
		logger.Warn().Msg(w)
	}

	policy, err := distpolicy.New(resolved.Radius)
	if err != nil {
		return err
	}

	result, err := medoid.FindMedoidsFull(tree, cfg.P, policy, resolved.PriorCovered, resolved.Excluded, resolved.FullyExcluded)
	if err != nil {
		return err
	}

	logger.Info().Int("p", cfg.P).Float64("objective", result.Objective).Strs("medoids", result.Labels).Msg("selection complete")

	return writeResult(cmd.OutOrStdout(), tree, result, cfg.OutputFormat)
}

func readInputs(cmd *cobra.Command, cfg config.Config) (*rawtree.Tree, int, error) {
	treeReader, closeTree, err := openInput(cfg.InputTree)
	if err != nil {
		return nil, 0, err
	}
	defer closeTree()

	tree, err := newick.Parse(treeReader)
	if err != nil {
		return nil, 0, err
	}

	alignmentLength := 0
	if cfg.Alignment != "" {
		f, err := os.Open(cfg.Alignment)
		if err != nil {
			return nil, 0, fmt.Errorf("opening alignment: %w", err)
		}
		defer f.Close()

		aln, err := align.ReadFASTA(f)
		if err != nil {
			return nil, 0, err
		}
		alignmentLength = aln.Length()

		weights, err := align.AncestralWeights(tree, aln)
		if err != nil {
			return nil, 0, err
		}
		tree.Reweight(weights)
	}

	return tree, alignmentLength, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input tree: %w", err)
	}

	return f, func() { f.Close() }, nil
}

func writeResult(w io.Writer, tree *rawtree.Tree, result medoid.Result, format string) error {
	switch format {
	case "newick":
		_, err := fmt.Fprintln(w, render.Highlight(tree, result.Labels))
		return err
	case "json":
		_, err := fmt.Fprintf(w, `{"objective":%g,"medoids":%s}`+"\n", result.Objective, quoteLabels(result.Labels))
		return err
	default:
		if err := render.ANSI(w, tree, result.Labels); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "objective: %g\n", result.Objective)
		return err
	}
}

func quoteLabels(labels []string) string {
	out := "["
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", l)
	}
	return out + "]"
}
