package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"pagelens/pkg/config"
	"pagelens/pkg/detector"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active detection catalog",
	Long: `Prints every framework definition the detector evaluates, including any
min-confidence overrides from the config file, as YAML (or JSON with --json).`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := detector.NewAnalyzer()
	a.JS = detector.ApplyOverrides(a.JS, cfg.CatalogOverrides)
	a.CSS = detector.ApplyOverrides(a.CSS, cfg.CatalogOverrides)
	view := a.Describe()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(view)
		return
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
