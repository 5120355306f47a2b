// Command ssfdemo renders number-format codes from the command line.
//
// It reads lines of "value<TAB>format" from stdin and prints the rendered
// result of each, one per line:
//
//	$ printf '1234.5\t#,##0.00\n44197\tyyyy-mm-dd\n' | ssfdemo
//	1,234.50
//	2021-01-01
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gossf/ssf"
)

func main() {
	date1904 := flag.Bool("1904", false, "interpret date serials under the 1904 date system")
	flag.Parse()

	opts := ssf.DefaultOptions()
	if *date1904 {
		opts.DateSystem = ssf.Date1904
	}

	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "ssfdemo:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File, opts ssf.Options) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, format, ok := strings.Cut(line, "\t")
		if !ok {
			fmt.Fprintf(os.Stderr, "ssfdemo: line %d: expected value<TAB>format, got %q\n", lineNo, line)
			continue
		}

		f, err := ssf.Parse(format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ssfdemo: line %d: %v\n", lineNo, err)
			continue
		}
		fmt.Fprintln(out, f.Format(parseValue(value), opts))
	}
	return scanner.Err()
}

// parseValue turns a stdin field into the number, bool, or string ssf.Format
// expects. A string value always renders through the text section, so a
// field that looks numeric is parsed into a float64 up front rather than
// left for the library to coerce.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "TRUE", "true":
		return true
	case "FALSE", "false":
		return false
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return trimmed
}
