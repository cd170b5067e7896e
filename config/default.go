package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Dsakit + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and default values alongside the definition.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.TypeName(),
	})
}

// TypeName returns the name of the field's value type as accepted by "config set".
func (f *Field) TypeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Parse converts raw command-line values into the field's value type.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", values[0])
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", f.Key)
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StackCapacity, 0, "Initial capacity reserved for stacks created by the op interpreter")
	register(key.OutputJson, false, "Print eval and run reports as JSON")
	register(key.HistorySave, true, "Remember instructions entered in interactive modes")
	register(key.HistorySuggest, true, "Suggest previously entered instructions")
	register(key.TUIUndoLimit, 64, "Maximum number of undo snapshots kept by the TUI")
	register(key.TUIShowAlt, true, "Show the alternate stack next to the main one in the TUI")
	register(key.TUIPrompt, "> ", "Prompt string used by the TUI input")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
