package report

import (
	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// logLevel is the selected log level of the display functions.
var logLevel = LogLevelVerbose

// SetLogLevel sets the log level respected by the display functions.
func SetLogLevel(ll int) {
	logLevel = ll
}

// -----------------------------------------------------------------------------

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	if logLevel >= LogLevelError {
		ErrorStyleBG.Print(tag)
		ErrorColorFG.Println(" " + err.Error())
	}
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	if logLevel >= LogLevelWarn {
		WarnStyleBG.Print(tag)
		WarnColorFG.Println(" " + msg)
	}
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	if logLevel == LogLevelVerbose {
		InfoStyleBG.Print(tag)
		InfoColorFG.Println(" " + msg)
	}
}
