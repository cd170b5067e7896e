// Package cmd implements the command-line interface for dsakit.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dsakit/dsakit/ops"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("step", "s", false, "Generate the schema of a single step instead of a whole report")
}

// schemaCmd generates JSON schemas for reports printed with --json.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for eval and run reports",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "report", "step":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("step")):
			schema = reflector.Reflect(&ops.Step{})
		default:
			schema = reflector.Reflect(&ops.Report{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
