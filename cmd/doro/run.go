package main

import (
	"github.com/aretw0/doro/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pet",
	Long: `Starts the pet on the terminal. Click it, drag it around, or leave it alone
and watch it wander. Without a terminal (or with --headless) the pet reads
NDJSON pointer events from stdin and logs what it would show.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{}
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.AssetsDir, _ = cmd.Flags().GetString("assets")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.JSONLogs, _ = cmd.Flags().GetBool("json-logs")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.Mute, _ = cmd.Flags().GetBool("mute")
		opts.NoStats, _ = cmd.Flags().GetBool("no-stats")
		return cli.Run(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run without a screen (NDJSON events on stdin)")
	runCmd.Flags().Bool("mute", false, "Do not open the audio device")
	runCmd.Flags().Bool("no-stats", false, "Do not sample host CPU, memory and network usage")

	// 'run' is the default when no command is provided
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
