// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"os"

	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(opsCmd)
	opsCmd.SetOut(os.Stdout)
}

// opsCmd lists the instructions understood by eval, run and the interactive modes.
var opsCmd = &cobra.Command{
	Use:     "ops",
	Short:   "List available stack instructions",
	Aliases: []string{"instructions"},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(ops.Listing(util.Min(util.TerminalWidth(80), 100)))
	},
}
