package cmd

import (
	"fmt"
	"os"
)

const usage = `Usage: prettyname [flags|options] [descriptor ...]

Canonicalizes verbose type descriptors into short human-readable names.
Descriptors may be passed as arguments or listed in a TOML manifest.

Flags:
------
-h, --help      Displays usage information (ie. this text).
-v, --version   Displays the current prettyname version.

Options:
--------
-f,  --manifest   Sets the path to a TOML descriptor manifest.  The manifest
                  lists the types to name as [[types]] entries, each with an
                  "id" and a "descriptor" field.
-ll, --loglevel   Sets the tool's log-level.  Valid values are:
                    - "verbose" for outputting all messages (default)
                    - "warn" for outputting errors and warnings
                    - "error" for outputting errors only
                    - "silent" for no output
`

// toolVersion is the current version of the prettyname tool.
const toolVersion = "0.1.0"

// Prints the usage message and exits the tool with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argsFromOS returns the command-line arguments of the current process.
func argsFromOS() []string {
	return os.Args[1:]
}

// exitTool exits the tool with the given exit code.
func exitTool(exitCode int) {
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"f":         {},
	"ll":        {},
	"-manifest": {},
	"-loglevel": {},
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first
// value is the name of the argument; if the argument is positional, this
// value is empty.  The second value is the value of the argument; if this
// value is empty, the argument is a flag.  The final value indicates whether
// there was an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx >= len(ap.args) {
		return "", "", false
	}

	arg := ap.args[ap.ndx]
	ap.ndx++

	if len(arg) > 1 && arg[0] == '-' {
		name := arg[1:]

		if _, ok := options[name]; ok {
			if ap.ndx >= len(ap.args) {
				argumentError("option `%s` requires a value", arg)
			}

			value := ap.args[ap.ndx]
			ap.ndx++

			return name, value, true
		}

		return name, "", true
	}

	return "", arg, true
}
