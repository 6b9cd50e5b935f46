package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/pkg/layout"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
	"github.com/reactome-tools/reaction-layout/pkg/render/dot"
)

func newViewCmd(c **CLI) *cobra.Command {
	var (
		ontologyPath string
		output       string
		asSVG        bool
	)

	cmd := &cobra.Command{
		Use:   "view [model.json]",
		Short: "Render the reduced compartment tree for a model as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*c).runView(cmd.Context(), args[0], ontologyPath, output, asSVG)
		},
	}

	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to a JSON compartment ontology (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&asSVG, "svg", false, "rasterize to SVG instead of emitting raw DOT")
	cmd.MarkFlagRequired("ontology")

	return cmd
}

func (c *CLI) runView(ctx context.Context, inputPath, ontologyPath, output string, asSVG bool) error {
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

	dagSrc, err := onto.ReadDAG(ontFile)
	if err != nil {
		return fmt.Errorf("decode ontology: %w", err)
	}

	accessions := map[string]bool{}
	if in.Reaction.CompartmentID != "" {
		accessions[in.Reaction.CompartmentID] = true
	}
	for _, e := range in.Entities {
		accessions[e.CompartmentID] = true
	}
	list := make([]string, 0, len(accessions))
	for a := range accessions {
		list = append(list, a)
	}

	tree := dagSrc.CompartmentTree(list)
	highlighted := make(map[string]bool, len(accessions))
	for a := range accessions {
		highlighted[a] = true
	}

	dotSrc := dot.ToDOT(tree, dot.Options{Highlight: highlighted})

	var data []byte
	if asSVG {
		data, err = dot.RenderSVG(dotSrc)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	} else {
		data = []byte(dotSrc)
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	return nil
}
