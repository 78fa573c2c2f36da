// Package main implements the navfold CLI for inspecting observation
// constraints and running folding ablations over sample tool output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version information (set via ldflags during build)
var version = "dev"

var (
	// logLevel controls CLI log verbosity
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "navfold",
	Short: "Observation-constraint ablation tooling",
	Long: `navfold applies observation constraints to tool output the way an
agent-training environment would, so researchers can preview how each
budget and folding strategy reshapes what the agent sees.`,
	Version: version,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("navfold %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ablateCmd)
}
