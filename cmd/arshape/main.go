/*
Command arshape reshapes Arabic script text for display on terminals and
renderers without complex text shaping.

	arshape reshape "سلام دنیا"
	echo "سلام دنیا" | arshape reshape --keep-harakat
	arshape probe --font Vazirmatn.ttf --ligatures all
	arshape repl

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'arshape.cli'
func tracer() tracing.Trace {
	return tracing.Select("arshape.cli")
}

var traceKeys = []string{"arshape.cli", "arshape.reshape", "arshape.letters", "arshape.fonts"}

func main() {
	initDisplay()
	if err := initTracing(); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing:", err)
		os.Exit(1)
	}
	if err := Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// initTracing routes all trace keys of the module to Go's log package.
func initTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// setTraceLevel sets the level of all trace keys of the module.
func setTraceLevel(level string) error {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", level)
		}
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
