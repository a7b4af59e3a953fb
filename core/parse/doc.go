// Package parse turns user input into operands.
//
// [Operands] accepts a whitespace or comma separated list ("1 2 3",
// "1, 2, 3") as well as a bracketed list ("[1, 2, 3]"). Bracketed input that
// is not valid JSON, such as a missing closing bracket, is repaired with
// jsonrepair before giving up. [Number] parses a single operand.
package parse
