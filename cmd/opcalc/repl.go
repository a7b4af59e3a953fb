package main

import (
	"github.com/spf13/cobra"

	"github.com/leofalp/opcalc/internal/repl"
	"github.com/leofalp/opcalc/providers/listener"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive loop (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd)
		},
	}
}

func (a *app) runREPL(cmd *cobra.Command) error {
	calc := a.newCalculator()
	history := listener.NewHistory()
	calc.Subscribe(history)

	session := repl.NewSession(calc, a.in, a.out,
		repl.WithHistory(history),
		repl.WithObserver(a.observer),
		repl.WithMenu(a.cfg.Prompt),
		repl.WithPrecision(a.cfg.Precision),
	)
	return session.Run(cmd.Context())
}
