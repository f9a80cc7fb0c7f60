package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "structools",
	Short: "Structural cross-section property calculator",
	Long: `structools - Structural Section Tools

A CLI tool that computes the geometric and structural properties of
standard cross-sections: area, centroid, moments of inertia, section
moduli, torsion and warping constants, plastic moments and shear center.

Supported shapes:
  - Lipped channel (light-gauge C)
  - H-section (rolled or built-up I)
  - Box section (rectangular hollow)
  - Rectangular and circular solids
  - Reinforced concrete rectangle (transformed and cracked section)

Steel sections are checked for width-thickness ratios against the
JIS grades SN400, SN490, SM490 and SM520.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   structools v%-44s║\n", version.Version)
		fmt.Println("  ║   Structural Section Property Calculator                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section properties for steel, solid and RC shapes")
		fmt.Println("    • Width-thickness checks for JIS steel grades")
		fmt.Println("    • Batch evaluation of JSON, YAML and Excel definitions")
		fmt.Println("    • Excel and PDF reports, section diagrams")
		fmt.Println("    • HTTP service with Prometheus metrics")
		fmt.Println()
		fmt.Println("  Use 'structools --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
}
