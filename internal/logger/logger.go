package logger

import (
	"github.com/fatih/color" // Colored console output for status lines
)

// Colorized printing functions for the different status levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// colored appropriately for the level.

// Info logs informational messages in green color.
// Used for successful installs, applied settings, and normal progress.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Used for recoverable conditions like a skipped merge or a missing package manager.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Used for failed installs and fatal preconditions.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It defaults to a no-op and is reassigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. When disabled, Debug is a no-op
// so call sites never need to guard their debug lines.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
