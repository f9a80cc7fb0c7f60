package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/diagram"
)

var (
	calcInput       sectionInput
	calcFormat      string
	calcShowDiagram bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the properties of a section",
	Long: `Calculate area, centroid, moments of inertia, section moduli,
torsion and warping constants of a section. Steel sections also report
plastic moments and the shear center; RC sections report the modular
ratio, cracked section and cracking moment.

Dimensions are in mm, f'c in MPa.

Examples:
  structools calc -k h_section -d h=400,b=200,t_w=8,t_f=13
  structools calc -k lipped_channel -d h=200,b=75,d=20,t_w=2.3,t_f=2.3,t_l=2.3
  structools calc -k rc_rectangular -d b=300,h=500,fc=28 --rebar "60:1500:3-25mm"
  structools calc -f sections.yaml --name G1 --format json`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcInput.register(calcCmd)
	calcCmd.Flags().StringVar(&calcFormat, "format", formatTable, "Output format (table, json, yaml)")
	calcCmd.Flags().BoolVar(&calcShowDiagram, "diagram", false, "Show ASCII section diagram")
}

func runCalc(cmd *cobra.Command, args []string) error {
	if err := validFormat(calcFormat); err != nil {
		return err
	}
	defs, err := calcInput.definitions()
	if err != nil {
		return err
	}

	results := make([]batch.Result, len(defs))
	for i, def := range defs {
		results[i] = batch.EvaluateOne(def)
		results[i].Index = i
	}
	if len(results) == 1 && !results[0].OK() {
		return results[0].Err
	}

	out := cmd.OutOrStdout()
	if calcFormat != formatTable {
		if len(results) == 1 {
			return encode(out, calcFormat, results[0])
		}
		return encode(out, calcFormat, results)
	}

	printBanner(out, "SECTION PROPERTIES")
	for i, r := range results {
		if !r.OK() {
			fmt.Fprintf(out, "  Section: %s\n  Error: %s\n\n", r.Name, r.Error)
			continue
		}
		printProperties(out, r)

		if calcShowDiagram {
			s, err := defs[i].Build()
			if err != nil {
				return err
			}
			d, err := diagram.FromSection(r.Name, s)
			if err != nil {
				return err
			}
			fmt.Fprint(out, diagram.DrawASCII(d, 40))
			fmt.Fprintln(out)
		}
	}
	return nil
}
