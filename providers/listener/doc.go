// Package listener provides the result listeners shipped with opcalc.
//
// [Printer] writes every result to an io.Writer as "Result: <value>", and
// [History] keeps results in memory for the REPL history command. Both
// implement broadcast.Listener.
package listener
