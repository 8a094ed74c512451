package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pagelens/pkg/config"
	"pagelens/pkg/detector"
	"pagelens/pkg/page"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scanConcurrency int

var scanCmd = &cobra.Command{
	Use:   "scan URL...",
	Short: "Detect frameworks across several pages",
	Long: `Runs detection against every given URL or file with a bounded worker pool
and prints one JSON result per line, in input order.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScan,
}

type scanResult struct {
	Target string `json:"target"`
	Error  string `json:"error,omitempty"`
	detector.Result
	Assets *page.Assets `json:"assets,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if scanConcurrency > 0 {
		cfg.Concurrency = scanConcurrency
	}
	opts := detectionOptions(cfg)

	var bar *progressbar.ProgressBar
	if isTerminal() && !jsonOutput {
		bar = progressbar.Default(int64(len(args)), "scanning")
	}

	results := make([]scanResult, len(args))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Concurrency)
	for i, target := range args {
		g.Go(func() error {
			pg, res, err := analyzeTarget(ctx, target, cfg, opts)
			if err != nil {
				// One unreachable page must not sink the batch.
				results[i] = scanResult{Target: target, Error: err.Error()}
			} else {
				assets := pg.Assets()
				results[i] = scanResult{Target: target, Result: res, Assets: &assets}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	enc := json.NewEncoder(os.Stdout)
	for _, r := range results {
		_ = enc.Encode(r)
	}
}

func init() {
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "Concurrent page loads (defaults to the config value)")
}
