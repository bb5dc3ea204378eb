// Package cmd is the top-level driver package for the prettyname tool: it
// contains the functionality for parsing command-line arguments, loading
// descriptor manifests, and printing canonical names.
package cmd

import (
	"errors"
	"fmt"
	"sort"

	"prettyname"
	"prettyname/report"
)

// Tool represents the overall state and configuration of one tool run.
type Tool struct {
	// The path to the descriptor manifest, if one was given.
	manifestPath string

	// The descriptors given directly on the command line, in order.
	descriptors []string
}

// Run is the main entry point for the prettyname tool.  This should be
// called directly from main.  It returns the process exit code.
func Run() int {
	t := NewToolFromArgs()

	if t.manifestPath != "" {
		source, ids, err := LoadManifest(t.manifestPath)
		if err != nil {
			report.PrintErrorMessage("Manifest Error", err)
			return 1
		}

		namer := prettyname.NewNamer(source)
		for _, id := range ids {
			desc, _ := source.Describe(id)
			printName(desc, namer.Name(id))
		}

		return 0
	}

	// Descriptors given directly are assigned sequential identities.
	source := prettyname.StaticSource{}
	for i, desc := range t.descriptors {
		source[prettyname.TypeID(i+1)] = desc
	}

	namer := prettyname.NewNamer(source)
	for i, desc := range t.descriptors {
		printName(desc, namer.Name(prettyname.TypeID(i+1)))
	}

	return 0
}

// printName prints one canonicalized name, flagging sentinel results.
func printName(descriptor, name string) {
	if name == prettyname.ErrorName {
		report.PrintWarningMessage("Degraded", fmt.Sprintf("%s => %s", descriptor, name))
	} else {
		report.PrintInfoMessage("Name", fmt.Sprintf("%s => %s", descriptor, name))
	}
}

// -----------------------------------------------------------------------------

// logLevelNames maps log-level option strings to their enumerated values.
var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// NewToolFromArgs creates a new tool configuration from the command-line
// arguments, exiting on any argument error.
func NewToolFromArgs() *Tool {
	return newToolFromArgList(argsFromOS())
}

// newToolFromArgList creates a new tool configuration from an argument list.
func newToolFromArgList(args []string) *Tool {
	t := &Tool{}
	ap := &argParser{args: args}

	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}

		switch name {
		case "":
			t.descriptors = append(t.descriptors, value)
		case "h", "-help":
			printUsage(0)
		case "v", "-version":
			fmt.Println("prettyname v" + toolVersion)
			exitTool(0)
		case "f", "-manifest":
			t.manifestPath = value
		case "ll", "-loglevel":
			ll, ok := logLevelNames[value]
			if !ok {
				argumentError("invalid log level: `%s`", value)
			}

			report.SetLogLevel(ll)
		default:
			argumentError("unknown argument: `-%s`", name)
		}
	}

	if t.manifestPath == "" && len(t.descriptors) == 0 {
		argumentError("no descriptors given")
	}

	return t
}

// sortIDs sorts a slice of type identities in ascending order.
func sortIDs(ids []prettyname.TypeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// errManifest wraps a manifest validation failure.
func errManifest(msg string) error {
	return errors.New(msg)
}
