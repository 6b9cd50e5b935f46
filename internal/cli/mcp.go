package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/internal/mcp"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

func newMCPCmd(c **CLI) *cobra.Command {
	var ontologyPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the layout engine as a Model Context Protocol tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*c).runMCP(ontologyPath)
		},
	}

	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to a JSON compartment ontology (required)")
	cmd.MarkFlagRequired("ontology")
	return cmd
}

func (c *CLI) runMCP(ontologyPath string) error {
	ontFile, err := os.Open(ontologyPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", ontologyPath, err)
	}
	defer ontFile.Close()

	dag, err := onto.ReadDAG(ontFile)
	if err != nil {
		return fmt.Errorf("decode ontology: %w", err)
	}

	return mcp.NewServer(dag).Serve()
}
