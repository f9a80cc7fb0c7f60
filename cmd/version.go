package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of structools",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "structools v%s\n", version.Version)
		fmt.Fprintln(out, "Structural Section Property Calculator")
		fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
