// Package repl implements the interactive calculator loop.
//
// A [Session] prints the operation menu, reads a symbol, asks for the
// operands the operation needs and hands them to the calculator. Results are
// shown by whatever listeners the calculator has; the session itself only
// prints prompts, errors and the history.
package repl
