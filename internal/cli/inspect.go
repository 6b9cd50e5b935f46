package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/pkg/layout"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

func newInspectCmd(c **CLI) *cobra.Command {
	var ontologyPath string

	cmd := &cobra.Command{
		Use:   "inspect [model.json]",
		Short: "Interactively browse a computed layout's participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*c).runInspect(cmd.Context(), args[0], ontologyPath)
		},
	}

	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to a JSON compartment ontology (required)")
	cmd.MarkFlagRequired("ontology")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, inputPath, ontologyPath string) error {
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

	result, err := layout.Compute(ctx, in, dag)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	p := tea.NewProgram(newEntityListModel(result.Reaction.Name, result.Entities))
	_, err = p.Run()
	return err
}
