package main

import (
	"os"

	"github.com/aretw0/doro/internal/cli"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, check or create the configuration",
	Long:  `Prints the effective configuration (defaults overlaid with the config file). Use --validate to check ranges or --init to write the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		validate, _ := cmd.Flags().GetBool("validate")
		initialize, _ := cmd.Flags().GetBool("init")
		force, _ := cmd.Flags().GetBool("force")

		ctx := cmd.Context()
		switch {
		case initialize:
			return cli.InitConfig(ctx, os.Stdout, path, force)
		case validate:
			return cli.ValidateConfig(ctx, os.Stdout, path)
		default:
			return cli.PrintConfig(ctx, os.Stdout, path)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("validate", false, "Check the configuration and report out-of-range values")
	configCmd.Flags().Bool("init", false, "Write the default configuration to the config path")
	configCmd.Flags().Bool("force", false, "Overwrite an existing file with --init")
	configCmd.MarkFlagsMutuallyExclusive("validate", "init")
}
