// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/script"
	"github.com/dsakit/dsakit/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)

	addJsonFlag(runCmd)
	addCapacityFlag(runCmd)
	bindOnRun(runCmd, map[string]string{
		key.OutputJson:    "json",
		key.StackCapacity: "capacity",
	})
}

// runCmd executes an op script or a Lua script from disk.
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute an op script, a Lua script, or op instructions read from stdin",
	Long: `Execute a script file.
Files ending in ` + constant.ScriptExt + ` run as Lua with the "stack" module preloaded.
Any other file, or "-" for stdin, is read as one instruction per line.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		if strings.EqualFold(filepath.Ext(path), constant.ScriptExt) {
			handleErr(script.Run(path))
			return
		}

		report, err := runOps(path)
		handleErr(err)
		handleErr(writeReport(cmd.OutOrStdout(), report, viper.GetBool(key.OutputJson)))
	},
}

func runOps(path string) (*ops.Report, error) {
	var (
		r      io.Reader = os.Stdin
		source           = "stdin"
	)

	if path != "-" {
		file, err := filesystem.API().Open(path)
		if err != nil {
			return nil, err
		}
		defer util.Ignore(file.Close)

		r, source = file, util.FileStem(path)
	}

	program, err := ops.Parse(r)
	if err != nil {
		return nil, err
	}

	return ops.NewMachine(stackCapacity()).Run(source, program)
}
