package constant

// Platform identifiers compared against runtime.GOOS when clearing the terminal.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
