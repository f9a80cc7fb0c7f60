package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/jis"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the supported steel grades and their limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printBanner(out, "STEEL GRADES (JIS)")

		tw := newTabWriter(out)
		fmt.Fprintf(tw, "  Grade\tF (MPa)\tFu (MPa)\tWeb\tFlange\tBox wall\n")
		fmt.Fprintf(tw, "  ─────\t───────\t────────\t───\t──────\t────────\n")
		for _, g := range jis.Grades() {
			m, err := jis.Lookup(string(g))
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "  %s\t%.0f\t%.0f\t%.0f\t%.0f\t%.2f\n",
				m.Grade, m.Fy, m.Fu, m.Limits.Web, m.Limits.Flange, m.TubeLimits().Web)
		}
		tw.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}
