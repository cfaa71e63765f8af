// Command cnum spells decimal numerals in Chinese.
//
// Usage:
//
//	cnum [flags] [--] numeral...
//
// Without numerals cnum reads one numeral per line from standard input. Use
// -- before negative numerals so they are not read as flags.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	numerals "github.com/Lostpig/chinese-numerals"
	"github.com/Lostpig/chinese-numerals/table"
)

const prompt = "cnum> "

// options holds the parsed command line.
type options struct {
	table       string
	traditional bool
	flat        bool
	interactive bool
	args        []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parse(args []string, stderr io.Writer) (opts options, err error) {
	flags := flag.NewFlagSet("cnum", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.table, "table", os.Getenv("CNUM_TABLE"), "YAML or JSON glyph table file (default $CNUM_TABLE)")
	flags.BoolVar(&opts.traditional, "traditional", false, "Use the traditional table")
	flags.BoolVar(&opts.flat, "flat", false, "Transliterate digit by digit")
	flags.BoolVar(&opts.interactive, "i", false, "Interactive prompt")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cnum [flags] [--] numeral...")
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return opts, err
	}

	opts.args = flags.Args()

	return opts, nil
}

func (opts options) converter() (c *numerals.Converter, err error) {
	t := numerals.Simplified

	switch {
	case opts.table != "":
		t, err = table.Load(opts.table)
		if err != nil {
			return nil, err
		}
	case opts.traditional:
		t = numerals.Traditional
	}

	return numerals.New(numerals.WithTable(t)), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	c, err := opts.converter()
	if err != nil {
		fmt.Fprintln(stderr, "cnum:", err)

		return 2
	}

	spell := c.Convert
	if opts.flat {
		spell = c.Transform
	}

	if opts.interactive {
		return repl(spell, stdout, stderr)
	}

	failed := false

	each := func(s string) {
		if !eval(spell, s, stdout, stderr) {
			failed = true
		}
	}

	if len(opts.args) > 0 {
		for _, s := range opts.args {
			each(s)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			each(line)
		}

		err = scanner.Err()
		if err != nil {
			fmt.Fprintln(stderr, "cnum:", err)

			return 2
		}
	}

	if failed {
		return 1
	}

	return 0
}

// eval spells one numeral, writing the result to stdout or the error to
// stderr. It reports whether spelling succeeded.
func eval(spell func(interface{}) (string, error), s string, stdout, stderr io.Writer) bool {
	out, err := spell(s)
	if err != nil {
		fmt.Fprintln(stderr, "cnum:", err)

		return false
	}

	fmt.Fprintln(stdout, out)

	return true
}

func readHistory(line *liner.State, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer f.Close()

	_, err = line.ReadHistory(f)

	return err
}

func writeHistory(line *liner.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = line.WriteHistory(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func repl(spell func(interface{}) (string, error), stdout, stderr io.Writer) int {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	history := filepath.Join(os.TempDir(), ".cnum_history")
	if err := readHistory(line, history); err != nil {
		fmt.Fprintln(stderr, "cnum: history:", err)
	}

	defer func() {
		if err := writeHistory(line, history); err != nil {
			fmt.Fprintln(stderr, "cnum: history:", err)
		}
	}()

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}

			if err == io.EOF {
				fmt.Fprintln(stdout)

				return 0
			}

			fmt.Fprintln(stderr, "cnum:", err)

			return 2
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "exit", "quit":
			return 0
		}

		line.AppendHistory(input)

		eval(spell, input, stdout, stderr)
	}
}
