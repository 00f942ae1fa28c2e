package main

import (
	"os"

	"github.com/aretw0/doro/internal/cli"
	"github.com/spf13/cobra"
)

// statesCmd represents the states command
var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Describe the behavior states",
	Long:  `Prints a table of the pet's states and what moves it between them, or a Mermaid diagram (graph TD) with --mermaid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.PrintStates(os.Stdout, mermaid, plain)
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	statesCmd.Flags().Bool("mermaid", false, "Output a Mermaid flowchart")
	statesCmd.Flags().Bool("plain", false, "Render without colors")
}
