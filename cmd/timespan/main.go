// Command timespan converts spans of time between units and finds the
// most natural unit to display a value in.
//
// Usage:
//
//	timespan <command> [flags] [args]
//
// Commands:
//
//	convert  Convert a value from one unit to another
//	concise  Find the most natural display unit for a value
//	parse    Parse a duration string and reprint it
//	repl     Start an interactive session
//
// Examples:
//
//	# 1 hour in minutes
//	timespan convert 1 hr min
//
//	# 90 minutes, displayed naturally
//	timespan concise 90 min
//
//	# Full unit names and more digits
//	timespan convert -full -precision 4 1 day wk
//
//	# Interactive session
//	timespan repl
//
// Unit names may be abbreviated (ms, s, min, hr, day, wk, mo, yr), full
// (millisecond ... year), or pluralized. Unrecognized unit names fall
// back to "hour", matching the library's defensive defaults.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/timespan-dev/timespan-go/pkg/timespan"
)

const usage = `timespan - time span conversion tool

Usage:
  timespan <command> [flags] [args]

Commands:
  convert  Convert a value from one unit to another
  concise  Find the most natural display unit for a value
  parse    Parse a duration string and reprint it
  repl     Start an interactive session

Use "timespan <command> -help" for more information about a command.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "convert":
		err = runConvert(args[1:], os.Stdout)
	case "concise":
		err = runConcise(args[1:], os.Stdout)
	case "parse":
		err = runParse(args[1:], os.Stdout)
	case "repl":
		err = runREPL()
	case "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", args[0], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// displayFlags are the formatting flags shared by the convert and
// concise commands.
type displayFlags struct {
	precision int
	full      bool
	sep       string
}

func newFlagSet(name string, df *displayFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.IntVar(&df.precision, "precision", -1, "decimal digits in the result (default 2)")
	fs.BoolVar(&df.full, "full", false, "use full unit names instead of abbreviations")
	fs.StringVar(&df.sep, "sep", " ", "separator between magnitude and unit name")
	return fs
}

func runConvert(args []string, out io.Writer) error {
	var df displayFlags
	fs := newFlagSet("convert", &df)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: timespan convert [flags] <n> <from> <to>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		os.Exit(2)
	}

	n, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("bad magnitude %q: %w", fs.Arg(0), err)
	}

	d := timespan.Convert(n, fs.Arg(1), fs.Arg(2), df.precision)
	fmt.Fprintln(out, d.WithAbbr(!df.full).Format(df.sep))
	return nil
}

func runConcise(args []string, out io.Writer) error {
	var df displayFlags
	fs := newFlagSet("concise", &df)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: timespan concise [flags] <n> <unit>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(2)
	}

	n, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("bad magnitude %q: %w", fs.Arg(0), err)
	}

	d := timespan.Concise(n, fs.Arg(1), df.precision)
	fmt.Fprintln(out, d.WithAbbr(!df.full).Format(df.sep))
	return nil
}

func runParse(args []string, out io.Writer) error {
	var df displayFlags
	fs := newFlagSet("parse", &df)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: timespan parse [flags] <duration>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	d, err := timespan.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	if df.precision >= 0 {
		d = d.WithPrecision(df.precision)
	}
	fmt.Fprintln(out, d.WithAbbr(!df.full).Format(df.sep))
	return nil
}
