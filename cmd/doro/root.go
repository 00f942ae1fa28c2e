package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doro",
	Short: "Doro is a desktop pet that lives in your terminal",
	Long: `Doro runs a small reactive pet: it idles, reacts to clicks, follows drags
and wanders around on its own. Behavior and looks are driven by a YAML config
and an asset directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "doro.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringP("assets", "a", "assets", "Directory holding one subdirectory of assets per key (Idle, Click, Move, DoubleClick)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
}
