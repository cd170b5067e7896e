// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/icon"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/log"
	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/style"
	"github.com/dsakit/dsakit/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addCapacityFlag(rootCmd)
	bindOnRun(rootCmd, map[string]string{key.StackCapacity: "capacity"})

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember instructions entered in interactive modes")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))
}

// rootCmd defines the entry point for the dsakit application.
var rootCmd = &cobra.Command{
	Use:   constant.Dsakit,
	Short: "An interactive LIFO stack toolkit",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - An interactive LIFO stack toolkit"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Capacity: stackCapacity(),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addCapacityFlag(c *cobra.Command) {
	c.Flags().IntP("capacity", "c", 0, "Initial capacity reserved for the main stack")
}

func addJsonFlag(c *cobra.Command) {
	c.Flags().BoolP("json", "j", false, "Format the report as JSON")
}

// bindOnRun binds config keys to flags of c right before c runs.
// Several commands define the same flag, and viper keeps one binding per key.
func bindOnRun(c *cobra.Command, bindings map[string]string) {
	c.PreRun = func(cmd *cobra.Command, args []string) {
		for k, flag := range bindings {
			lo.Must0(viper.BindPFlag(k, cmd.Flags().Lookup(flag)))
		}
	}
}

// stackCapacity returns the configured initial capacity, rejecting values no stack can allocate.
func stackCapacity() int {
	n := viper.GetInt(key.StackCapacity)
	handleErr(validateSetting(key.StackCapacity, n))
	return n
}

// validateSetting rejects configuration values that parse but cannot be used.
func validateSetting(name string, value any) error {
	switch name {
	case key.StackCapacity:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s must be an integer", name)
		}
		if err := ops.ValidateCapacity(n); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
