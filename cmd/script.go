// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"os"
	"os/user"

	"github.com/dsakit/dsakit/script"
	"github.com/dsakit/dsakit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scriptCmd)
}

// scriptCmd groups Lua script management.
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Manage Lua stack scripts",
}

func init() {
	scriptCmd.AddCommand(scriptNewCmd)

	scriptNewCmd.Flags().StringP("author", "a", "", "Author recorded in the script header (defaults to the current user)")
	scriptNewCmd.Flags().StringP("dir", "d", "", "Directory to write the script into (defaults to the scripts directory)")
}

// scriptNewCmd scaffolds a starter Lua script.
var scriptNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new Lua script that uses the stack module",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := lo.Must(cmd.Flags().GetString("author"))
		if author == "" {
			if usr, err := user.Current(); err == nil {
				author = usr.Username
			} else {
				author = "Anonymous"
			}
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Scripts()
		}

		target, err := script.Scaffold(dir, args[0], author)
		handleErr(err)

		cmd.Println(target)
	},
}
