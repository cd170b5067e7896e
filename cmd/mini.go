// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	addCapacityFlag(miniCmd)
	bindOnRun(miniCmd, map[string]string{key.StackCapacity: "capacity"})
}

// miniCmd launches the line-oriented prompt.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch a lightweight line-oriented prompt",
	Long:  `Run stack instructions one line at a time, with completion from history and op names.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Capacity: stackCapacity(),
		}
		handleErr(mini.Run(&options))
	},
}
