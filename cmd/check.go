package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/diagram"
	"github.com/toruinaba/structools/internal/jis"
	"github.com/toruinaba/structools/internal/section"
)

var (
	checkInput  sectionInput
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check width-thickness ratios of a steel section",
	Long: `Check the web and flange width-thickness ratios of an H-section or
box section against the limits of a JIS steel grade. The grade defaults
to SN400.

Lipped channels have no tabulated limits; their web, flange and lip
ratios are reported without a judgement.

Examples:
  structools check -k h_section -d h=400,b=200,t_w=8,t_f=13 -g SN490
  structools check -k box -d h=200,b=200,t_w=9,t_f=9
  structools check -f sections.yaml --format json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkInput.register(checkCmd)
	checkCmd.Flags().StringVar(&checkFormat, "format", formatTable, "Output format (table, json, yaml)")
}

// checkOutput is the encoded form of one check
type checkOutput struct {
	Name   string                       `json:"name" yaml:"name"`
	Kind   section.Kind                 `json:"kind" yaml:"kind"`
	Check  *section.WidthThicknessCheck `json:"check,omitempty" yaml:"check,omitempty"`
	Ratios map[string]float64           `json:"ratios,omitempty" yaml:"ratios,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validFormat(checkFormat); err != nil {
		return err
	}
	defs, err := checkInput.definitions()
	if err != nil {
		return err
	}

	outputs := make([]checkOutput, 0, len(defs))
	for _, def := range defs {
		s, err := def.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", def.Label(), err)
		}
		o := checkOutput{Name: def.Label(), Kind: s.Kind()}

		switch s := s.(type) {
		case section.WidthThicknessChecker:
			c, err := s.CheckWidthThickness(def.Grade)
			if err != nil {
				return fmt.Errorf("%s: %w", def.Label(), err)
			}
			o.Check = &c
		case *section.LippedChannel:
			o.Ratios = map[string]float64{
				"web":    s.WebWidthThicknessRatio(),
				"flange": s.FlangeWidthThicknessRatio(),
				"lip":    s.LipWidthThicknessRatio(),
			}
		default:
			return fmt.Errorf("%s: %w: %s has no width-thickness check",
				def.Label(), section.ErrUnsupportedShape, s.Kind())
		}
		outputs = append(outputs, o)
	}

	out := cmd.OutOrStdout()
	if checkFormat != formatTable {
		if len(outputs) == 1 {
			return encode(out, checkFormat, outputs[0])
		}
		return encode(out, checkFormat, outputs)
	}

	printBanner(out, "WIDTH-THICKNESS CHECK")
	for _, o := range outputs {
		if o.Check == nil {
			fmt.Fprint(out, diagram.DrawSummaryBox(o.Name+" (no tabulated limits)", []string{
				fmt.Sprintf("%-7s %7.2f", "Web", o.Ratios["web"]),
				fmt.Sprintf("%-7s %7.2f", "Flange", o.Ratios["flange"]),
				fmt.Sprintf("%-7s %7.2f", "Lip", o.Ratios["lip"]),
			}))
			fmt.Fprintln(out)
			continue
		}

		m, err := jis.Lookup(string(o.Check.Grade))
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s  %s (F = %.0f MPa)", o.Name, m.Grade, m.Fy)
		fmt.Fprint(out, diagram.DrawSummaryBox(title, widthThicknessLines(*o.Check)))

		status := section.StatusOK
		if !o.Check.OK() {
			status = section.StatusNG
		}
		fmt.Fprintf(out, "  Result: %s\n\n", status)
	}
	return nil
}
