// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/history"
	"github.com/dsakit/dsakit/style"
	"github.com/dsakit/dsakit/util"
	"github.com/dsakit/dsakit/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// location is a path dsakit reads or writes, with an optional one-line summary of what it holds.
type location struct {
	title   string
	flag    string
	short   mo.Option[string]
	path    func() string
	summary mo.Option[func() string]
}

var locations = []*location{
	{"Config", "config", mo.Some("c"), where.Config, mo.None[func() string]()},
	{"Scripts", "scripts", mo.Some("s"), where.Scripts, mo.Some(scriptsSummary)},
	{"History", "history", mo.Some("y"), where.History, mo.Some(historySummary)},
	{"Logs", "logs", mo.Some("l"), where.Logs, mo.None[func() string]()},
	{"Cache", "cache", mo.None[string](), where.Cache, mo.None[func() string]()},
}

func scriptsSummary() string {
	matches, err := afero.Glob(filesystem.API(), filepath.Join(where.Scripts(), "*"+constant.ScriptExt))
	if err != nil {
		return err.Error()
	}
	return util.Quantify(len(matches), "lua script", "lua scripts")
}

func historySummary() string {
	return util.Quantify(history.Count(), "remembered instruction", "remembered instructions")
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		if short, ok := l.short.Get(); ok {
			whereCmd.Flags().BoolP(l.flag, short, false, l.title+" path")
		} else {
			whereCmd.Flags().Bool(l.flag, false, l.title+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l *location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where dsakit keeps its configuration, scripts and history.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display where configuration, scripts and instruction history are kept",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range locations {
			cmd.Printf("%s %s\n", header(l.title), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if summary, ok := l.summary.Get(); ok {
				cmd.Println(style.Faint(summary()))
			}

			if i < len(locations)-1 {
				cmd.Println()
			}
		}
	},
}
