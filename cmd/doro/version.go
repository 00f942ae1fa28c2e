package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/doro"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of doro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("doro version %s\n", strings.TrimSpace(doro.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
