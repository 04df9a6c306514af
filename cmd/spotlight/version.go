package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/spotlight"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spotlight",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spotlight version %s\n", strings.TrimSpace(spotlight.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
