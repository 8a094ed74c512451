package cmd

import (
	"github.com/spf13/cobra"
)

// analyzeCmd is an explicit alias for the root behavior
var analyzeCmd = &cobra.Command{
	Use:   "analyze [URL|FILE]",
	Short: "Detect frameworks on a page",
	Long: Logo + `
Loads the page, evaluates the detection catalog against it and reports the
JS and CSS frameworks that clear their confidence thresholds.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) {
	// Same flow as invoking pagelens with a bare target
	runRootCommand(cmd, args)
}
