package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion is overridable at link time via -ldflags.
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the etlcore version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("etlcore " + buildVersion)
		return nil
	},
}
