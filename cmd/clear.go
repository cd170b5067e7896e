// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"fmt"

	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/history"
	"github.com/dsakit/dsakit/icon"
	"github.com/dsakit/dsakit/style"
	"github.com/dsakit/dsakit/util"
	"github.com/dsakit/dsakit/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"instruction history", "history", mo.Some("s"), history.Clear},
	{"log files", "logs", mo.Some("l"), func() error { return util.Delete(where.Logs()) }},
	{"cache directory", "cache", mo.Some("c"), func() error { return util.Delete(where.Cache()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(target.clear())
			fmt.Printf("%s %s cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
