package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/pkg/cache"
	"github.com/reactome-tools/reaction-layout/pkg/layout"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

func newComputeCmd(c **CLI) *cobra.Command {
	var (
		ontologyPath string
		output       string
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "compute [model.json]",
		Short: "Compute a reaction layout from a JSON participant model",
		Long: `Compute a reaction layout from a JSON participant model.

The input file describes one reaction, its participants and their roles,
and the compartments they live in. The ontology file supplies the
"surrounded_by" relation used to build the compartment tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*c).runCompute(cmd.Context(), args[0], ontologyPath, output, noCache)
		},
	}

	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to a JSON compartment ontology (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output layout JSON file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable compartment-tree caching")
	cmd.MarkFlagRequired("ontology")

	return cmd
}

func (c *CLI) runCompute(ctx context.Context, inputPath, ontologyPath, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer inFile.Close()

	in, err := layout.ReadInput(inFile)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	ontFile, err := os.Open(ontologyPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", ontologyPath, err)
	}
	defer ontFile.Close()

	dag, err := onto.ReadDAG(ontFile)
	if err != nil {
		return fmt.Errorf("decode ontology: %w", err)
	}

	var source layout.OntologySource = dag
	if !noCache {
		store, err := c.newCache(ctx)
		if err != nil {
			return fmt.Errorf("initialize cache: %w", err)
		}
		defer store.Close()
		source = onto.NewCachingSource(dag, store, cache.NewDefaultKeyer(), ontologyPath, c.treeTTL())
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	p := newProgress(logger)
	result, err := layout.Compute(ctx, in, source)
	spinner.Stop()
	if err != nil {
		printError("compute failed: %v", err)
		return err
	}
	p.done(fmt.Sprintf("Laid out %d participants", len(result.Entities)))

	if output == "" {
		output = inputPath + ".layout.json"
	}
	outFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer outFile.Close()
	if err := layout.WriteLayout(result, outFile); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	printSuccess("Computed layout for %s", result.Reaction.Name)
	printFile(output)

	return nil
}
