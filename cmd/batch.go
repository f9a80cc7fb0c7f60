package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/report"
	"github.com/toruinaba/structools/internal/section"
)

var (
	batchWorkers int
	batchOutput  string
	batchTitle   string
	batchFormat  string
	batchGrade   string
)

var batchCmd = &cobra.Command{
	Use:   "batch PATTERN...",
	Short: "Evaluate every section in one or more definition files",
	Long: `Evaluate all sections found in the files matching the given glob
patterns (json, yaml, xlsx; "**" matches any directory depth). Sections
are evaluated concurrently; a bad section is reported and does not stop
the rest.

Examples:
  structools batch "sections/**/*.yaml"
  structools batch members.xlsx -o report.xlsx
  structools batch "*.json" -o report.pdf --title "Level 3 framing"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", batch.DefaultWorkers, "Number of concurrent workers")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write a report (xlsx, pdf)")
	batchCmd.Flags().StringVar(&batchTitle, "title", "Section Properties", "Report title")
	batchCmd.Flags().StringVar(&batchFormat, "format", formatTable, "Output format (table, json, yaml)")
	batchCmd.Flags().StringVarP(&batchGrade, "grade", "g", "", "Override the steel grade of every section")
}

// batchOutputDoc is the encoded form of a batch run
type batchOutputDoc struct {
	Results []batch.Result `json:"results" yaml:"results"`
	Summary batch.Summary  `json:"summary" yaml:"summary"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := validFormat(batchFormat); err != nil {
		return err
	}

	defs, err := definition.LoadAll(args...)
	if err != nil {
		return err
	}
	if batchGrade != "" {
		for i := range defs {
			defs[i].Grade = batchGrade
		}
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := batch.Evaluate(ctx, defs, batchWorkers)
	if err != nil {
		return err
	}
	summary := batch.Summarize(results)

	if batchOutput != "" {
		if err := report.WriteFile(batchOutput, batchTitle, results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if batchFormat != formatTable {
		return encode(out, batchFormat, batchOutputDoc{Results: results, Summary: summary})
	}

	printBanner(out, "BATCH EVALUATION")
	tw := newTabWriter(out)
	fmt.Fprintf(tw, "  #\tName\tKind\tA (mm²)\tIx (mm⁴)\tZx (mm³)\tW/T\n")
	fmt.Fprintf(tw, "  ─\t────\t────\t───────\t────────\t────────\t───\n")
	for _, r := range results {
		if !r.OK() {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t-\t-\t-\tERROR: %s\n", r.Index+1, r.Name, r.Kind, r.Error)
			continue
		}
		wt := "-"
		if r.WidthThickness != nil {
			wt = string(section.StatusOK)
			if !r.WidthThickness.OK() {
				wt = string(section.StatusNG)
			}
		}
		p := r.Properties
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%.1f\t%.4g\t%.4g\t%s\n",
			r.Index+1, r.Name, r.Kind, p.Area, p.MomentOfInertiaStrong, p.SectionModulusStrong, wt)
	}
	tw.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %d sections, %d failed, %d NG (%s, %d workers)\n",
		summary.Total, summary.Failed, summary.NG, time.Since(start).Round(time.Millisecond), batchWorkers)
	if batchOutput != "" {
		fmt.Fprintf(out, "  Report written to %s\n", batchOutput)
	}
	fmt.Fprintln(out)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d sections could not be evaluated", summary.Failed, summary.Total)
	}
	return nil
}

// contextOrBackground guards commands executed without a context
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
