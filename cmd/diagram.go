package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/diagram"
)

var (
	diagramInput  sectionInput
	diagramWidth  int
	diagramOutput string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw a section to the terminal or an image file",
	Long: `Draw the outline of a section with its centroid (G), shear center (S),
reinforcement (o) and cracked neutral axis marked.

Without --output the section is drawn as text. With --output it is
exported as an image; the format follows the extension (png, svg, pdf).

Examples:
  structools diagram -k lipped_channel -d h=200,b=75,d=20,t_w=2.3,t_f=2.3,t_l=2.3
  structools diagram -k rc -d b=300,h=500,fc=28 --rebar "60:1500;440:600" -o rc.svg
  structools diagram -f sections.yaml --name G1 -o out/g1.png`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramInput.register(diagramCmd)
	diagramCmd.Flags().IntVar(&diagramWidth, "width", 40, "Width of the text diagram in characters")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	defs, err := diagramInput.definitions()
	if err != nil {
		return err
	}
	if diagramOutput != "" && len(defs) > 1 {
		return fmt.Errorf("%d sections in %s; pick one with --name", len(defs), diagramInput.file)
	}

	out := cmd.OutOrStdout()
	for _, def := range defs {
		s, err := def.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", def.Label(), err)
		}
		d, err := diagram.FromSection(def.Name, s)
		if err != nil {
			return err
		}

		if diagramOutput == "" {
			fmt.Fprint(out, diagram.DrawASCII(d, diagramWidth))
			fmt.Fprintln(out)
			continue
		}

		path, err := diagram.ExportImage(d, diagramOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  ✓ Diagram exported to: %s\n", path)
	}
	return nil
}
