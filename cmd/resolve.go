package cmd

import (
	"github.com/spf13/cobra"
)

// resolveCmd is an explicit alias for the root command, for scripts that
// prefer a named verb.
var resolveCmd = &cobra.Command{
	Use:   "resolve [PROJECT_PATH]",
	Short: "Resolve the deployment plan for a project",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRootCommand,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
