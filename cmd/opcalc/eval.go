package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leofalp/opcalc/core/parse"
)

const evalCommand = "eval"

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   evalCommand + " SYMBOL [OPERANDS...]",
		Short: "Evaluate one operation and print the result",
		Example: `  opcalc eval + 1 2 3
  opcalc eval nCr 5 2
  opcalc eval / "[10, 4]"
  opcalc eval - 10 -4
  opcalc eval -- - 10 -4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]

			var operands []float64
			if rest := strings.Join(args[1:], " "); strings.TrimSpace(rest) != "" {
				parsed, err := parse.Operands(rest)
				if err != nil {
					return err
				}
				operands = parsed
			}

			if _, err := a.newCalculator().Calculate(cmd.Context(), symbol, operands); err != nil {
				return fmt.Errorf("eval %s: %w", symbol, err)
			}
			return nil
		},
	}
}

// markNegativeOperands prefixes negative numbers following the eval command
// with a space so the flag parser keeps them as operands. Values of flags
// that take one, and everything after "--", are left alone.
func markNegativeOperands(root *cobra.Command, args []string) []string {
	var flagSets []*pflag.FlagSet
	flagSets = append(flagSets, root.PersistentFlags())
	for _, sub := range root.Commands() {
		if sub.Name() == evalCommand {
			flagSets = append(flagSets, sub.Flags())
		}
	}

	marked := make([]string, len(args))
	copy(marked, args)

	evaluating, seenCommand := false, false
	for i := 0; i < len(marked); i++ {
		arg := marked[i]
		if arg == "--" {
			break
		}
		if len(arg) > 1 && arg[0] == '-' {
			if evaluating {
				if _, err := parse.Number(arg); err == nil {
					marked[i] = " " + arg
					continue
				}
			}
			if takesValue(flagSets, arg) {
				i++
			}
			continue
		}
		if !seenCommand {
			seenCommand = true
			evaluating = arg == evalCommand
			if !evaluating {
				break
			}
		}
	}
	return marked
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(flagSets []*pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	for _, flags := range flagSets {
		var flag *pflag.Flag
		switch {
		case strings.HasPrefix(arg, "--"):
			flag = flags.Lookup(arg[2:])
		case len(arg) == 2:
			flag = flags.ShorthandLookup(arg[1:])
		}
		if flag != nil {
			return flag.NoOptDefVal == ""
		}
	}
	return false
}
