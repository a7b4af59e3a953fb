// Command opcalc is an interactive calculator.
//
//	opcalc                      start the interactive loop
//	opcalc eval + 1 2 3         evaluate one operation
//	opcalc eval - 10 -4         negative operands need no "--"
//	opcalc list --format yaml   print the operation catalog
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run executes the command line in args.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	cmd := newRootCmd(in, out, errOut)
	cmd.SetArgs(markNegativeOperands(cmd, args))
	return cmd.Execute()
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
