package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"siteplan/cmd/ui/report"
	"siteplan/pkg/evidence"
	"siteplan/pkg/export"
	"siteplan/pkg/resolver"
)

const Version = "1.0.0"

var (
	jsonOutput  bool
	plainOutput bool

	logoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const Logo = `
███████╗██╗████████╗███████╗██████╗ ██╗      █████╗ ███╗   ██╗
██╔════╝██║╚══██╔══╝██╔════╝██╔══██╗██║     ██╔══██╗████╗  ██║
███████╗██║   ██║   █████╗  ██████╔╝██║     ███████║██╔██╗ ██║
╚════██║██║   ██║   ██╔══╝  ██╔═══╝ ██║     ██╔══██║██║╚██╗██║
███████║██║   ██║   ███████╗██║     ███████╗██║  ██║██║ ╚████║
╚══════╝╚═╝   ╚═╝   ╚══════╝╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

var rootCmd = &cobra.Command{
	Use:   "siteplan [PROJECT_PATH]",
	Short: "Derive a static-hosting deployment plan from project evidence",
	Long: Logo + `
Siteplan inspects a web project's lockfiles, manifest, and framework config
files and derives a deterministic deployment plan: package manager, install
and build commands, cache parameters, setup steps, and a build-output guess,
plus a setup checklist report.`,
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
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}
	projectPath = filepath.Clean(projectPath)

	rec, err := evidence.Collect(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}

	plan, diags := resolver.Resolve(rec)
	serialized := export.Export(plan, diags)

	if jsonOutput || plainOutput || !isTerminal() {
		emitPlain(serialized)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))
	if err := report.Show(plan, serialized); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func emitPlain(serialized export.SerializedPlan) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(serialized)
		return
	}

	env, err := serialized.RenderEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(env)
	fmt.Println()
	fmt.Print(serialized.Report.Format())
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the serialized plan as JSON")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Skip the interactive report view")
}
