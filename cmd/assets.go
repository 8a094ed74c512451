package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pagelens/pkg/config"
	"pagelens/pkg/page"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var assetFilters []string

var assetsCmd = &cobra.Command{
	Use:   "assets [URL|FILE]",
	Short: "List the script and stylesheet files a page loads",
	Long: `Lists the page's loaded script and stylesheet URLs without any scoring.
Filters are tried as glob patterns against the full URL, falling back to a
case-insensitive substring match.`,
	Args: cobra.ExactArgs(1),
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pg, err := page.Fetch(context.Background(), args[0], page.FetchOptions{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load %s: %v\n", args[0], err)
		os.Exit(1)
	}

	assets := pg.Assets().Filter(assetFilters)

	if jsonOutput || !isTerminal() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(assets)
		return
	}

	heading := lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	item := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#40BDA3"))

	fmt.Println(heading.Render(fmt.Sprintf("Scripts (%d)", len(assets.Scripts))))
	for _, s := range assets.Scripts {
		fmt.Println(item.Render(s))
	}
	fmt.Println()
	fmt.Println(heading.Render(fmt.Sprintf("Stylesheets (%d)", len(assets.Stylesheets))))
	for _, s := range assets.Stylesheets {
		fmt.Println(item.Render(s))
	}
}

func init() {
	assetsCmd.Flags().StringArrayVar(&assetFilters, "filter", nil, "Keep only assets matching the pattern (repeatable)")
}
