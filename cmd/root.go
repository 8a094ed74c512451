package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pagelens/cmd/ui/report"
	"pagelens/cmd/ui/spinner"
	"pagelens/pkg/config"
	"pagelens/pkg/detector"
	"pagelens/pkg/page"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "1.0.0"

var (
	cfgPath         string
	jsonOutput      bool
	skipInteractive bool
	jsOnly          bool
	cssOnly         bool
	debugMode       bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
██████╗  █████╗  ██████╗ ███████╗██╗     ███████╗███╗   ██╗███████╗
██╔══██╗██╔══██╗██╔════╝ ██╔════╝██║     ██╔════╝████╗  ██║██╔════╝
██████╔╝███████║██║  ███╗█████╗  ██║     █████╗  ██╔██╗ ██║███████╗
██╔═══╝ ██╔══██║██║   ██║██╔══╝  ██║     ██╔══╝  ██║╚██╗██║╚════██║
██║     ██║  ██║╚██████╔╝███████╗███████╗███████╗██║ ╚████║███████║
╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝
`

var rootCmd = &cobra.Command{
	Use:   "pagelens [URL|FILE]",
	Short: "Inspect a web page for the frameworks it uses",
	Long: Logo + `
Pagelens loads a web page and reports which front-end frameworks it likely
uses, plus which script and stylesheet files it loads.

Detection is heuristic: independent signals (globals, attributes, class names,
loaded files, structural markers) are weighted and summed per framework, and
anything clearing its confidence threshold is reported.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		_ = cmd.Help()
		return
	}
	target := args[0]

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts := detectionOptions(cfg)

	if jsonOutput || skipInteractive || !isTerminal() {
		pg, res, err := analyzeTarget(context.Background(), target, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: analysis failed for %s: %v\n", target, err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(struct {
			Target string          `json:"target"`
			detector.Result
			Assets page.Assets `json:"assets"`
		}{Target: target, Result: res, Assets: pg.Assets()})
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Analyzing page..."))

	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	pg, res, err := analyzeTarget(context.Background(), target, cfg, opts)
	spinnerProgram.Quit()
	spinnerProgram.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed for %s: %v\n", target, err)
		os.Exit(1)
	}

	if err := report.Show(target, res, pg.Assets()); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", tipMsgStyle.Render("Tip: use --json for CI/automation mode, --debug to see fired signals"))
}

// detectionOptions merges config defaults with the family flags. Naming one
// family on the command line disables the other.
func detectionOptions(cfg *config.Config) detector.Options {
	opts := detector.Options{
		JSFrameworks:  cfg.JSFrameworks,
		CSSFrameworks: cfg.CSSFrameworks,
		Debug:         cfg.Debug || debugMode,
	}
	if jsOnly || cssOnly {
		opts.JSFrameworks = jsOnly
		opts.CSSFrameworks = cssOnly
	}
	return opts
}

func newAnalyzer(cfg *config.Config, opts detector.Options) *detector.Analyzer {
	a := detector.NewAnalyzer()
	a.JS = detector.ApplyOverrides(a.JS, cfg.CatalogOverrides)
	a.CSS = detector.ApplyOverrides(a.CSS, cfg.CatalogOverrides)
	if opts.Debug {
		a.Tracer = &detector.WriterTracer{W: os.Stderr}
	}
	return a
}

func analyzeTarget(ctx context.Context, target string, cfg *config.Config, opts detector.Options) (*page.Page, detector.Result, error) {
	pg, err := page.Fetch(ctx, target, page.FetchOptions{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, detector.Result{}, err
	}
	return pg, newAnalyzer(cfg, opts).Analyze(pg, opts), nil
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("pagelens version {{.Version}}\n")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(catalogCmd)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a pagelens config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive output (for CI/automation)")
	rootCmd.PersistentFlags().BoolVar(&jsOnly, "js", false, "Detect JS frameworks only")
	rootCmd.PersistentFlags().BoolVar(&cssOnly, "css", false, "Detect CSS frameworks only")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Trace fired detection signals to stderr")
}
