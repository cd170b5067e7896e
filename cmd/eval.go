// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"encoding/json"
	"io"

	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/ops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(evalCmd)

	addJsonFlag(evalCmd)
	addCapacityFlag(evalCmd)
	bindOnRun(evalCmd, map[string]string{
		key.OutputJson:    "json",
		key.StackCapacity: "capacity",
	})
}

// evalCmd executes instructions passed as arguments, one instruction per argument.
var evalCmd = &cobra.Command{
	Use:     "eval [instruction...]",
	Short:   "Execute stack instructions given as arguments",
	Example: `  dsakit eval "push 1 2 3" pop top print`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		program, err := ops.ParseArgs(args)
		handleErr(err)

		report, err := ops.NewMachine(stackCapacity()).Run("eval", program)
		handleErr(err)
		handleErr(writeReport(cmd.OutOrStdout(), report, viper.GetBool(key.OutputJson)))
	},
}

func writeReport(w io.Writer, report *ops.Report, asJson bool) error {
	if asJson {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	_, err := io.WriteString(w, report.Pretty()+"\n")
	return err
}
