package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/timespan-dev/timespan-go/pkg/timespan"
)

const replHelp = `Commands:
  convert <n> <from> <to>   Convert a value between units
  concise <n> <unit>        Find the most natural display unit
  parse <duration>          Parse a string like "90 min" or "1.5 hrs"
  help                      Show this help
  exit                      Leave the session
`

// runREPL runs the interactive session loop.
func runREPL() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timespan> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprint(rl.Stdout(), replHelp)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if done := dispatch(strings.Fields(line), rl.Stdout()); done {
			return nil
		}
	}
}

// dispatch executes one interactive command. It returns true when the
// session should end.
func dispatch(fields []string, out io.Writer) bool {
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "convert":
		if len(fields) != 4 {
			fmt.Fprintln(out, "usage: convert <n> <from> <to>")
			return false
		}
		n, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fmt.Fprintf(out, "bad magnitude %q\n", fields[1])
			return false
		}
		fmt.Fprintln(out, timespan.Convert(n, fields[2], fields[3]))

	case "concise":
		if len(fields) != 3 {
			fmt.Fprintln(out, "usage: concise <n> <unit>")
			return false
		}
		n, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fmt.Fprintf(out, "bad magnitude %q\n", fields[1])
			return false
		}
		fmt.Fprintln(out, timespan.Concise(n, fields[2]))

	case "parse":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: parse <duration>")
			return false
		}
		d, err := timespan.Parse(strings.Join(fields[1:], " "))
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		fmt.Fprintln(out, d)

	case "help":
		fmt.Fprint(out, replHelp)

	case "exit", "quit":
		return true

	default:
		fmt.Fprintf(out, "unknown command %q (try \"help\")\n", fields[0])
	}
	return false
}
