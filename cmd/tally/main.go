package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/tally/tally"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return runREPL()
	}
	switch args[1] {
	case "repl":
		return runREPL()
	case "eval":
		return evalCommand(args[2:])
	case "run":
		return runCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

// evalCommand evaluates its arguments as a single expression and prints
// the result.
func evalCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("tally eval: expression required")
	}
	input := strings.Join(args, " ")
	if strings.TrimSpace(input) == "" {
		return errors.New("tally eval: expression required")
	}
	result, err := tally.Evaluate(input)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

// runCommand evaluates a file line by line, printing one result per
// line. Blank and whitespace-only lines are skipped without producing
// output. Each line is evaluated independently; the first failing line
// aborts the run.
func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return errors.New("tally run: file path required")
	}

	file, err := os.Open(remaining[0])
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return evalLines(file.Name(), bufio.NewScanner(file), os.Stdout)
}

func evalLines(name string, scanner *bufio.Scanner, out io.Writer) error {
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, err := tally.Evaluate(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		fmt.Fprintln(out, result.String())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [repl|eval|run] ...\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    start the interactive calculator (default)")
	fmt.Fprintln(os.Stderr, "  eval <expression>")
	fmt.Fprintln(os.Stderr, "    evaluate a single expression and print the result")
	fmt.Fprintln(os.Stderr, "  run <file>")
	fmt.Fprintln(os.Stderr, "    evaluate a file line by line, skipping blank lines")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
