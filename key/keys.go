// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Stack Machine - these keys shape the containers created by the op interpreter.
const (
	StackCapacity = "stack.capacity"
)

// Output - these keys control how non-interactive commands print their results.
const (
	OutputJson = "output.json"
)

// Input History - these keys configure the persistence of entered instructions.
const (
	HistorySave    = "history.save"
	HistorySuggest = "history.suggest"
)

// Terminal User Interface (TUI) - these keys define the interactive view's behaviour.
const (
	TUIUndoLimit = "tui.undo_limit"
	TUIShowAlt   = "tui.show_alt"
	TUIPrompt    = "tui.prompt"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
