package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/opcalc/internal/utils"
	"github.com/leofalp/opcalc/providers/operation"
)

type catalogEntry struct {
	Symbol      string              `json:"symbol" yaml:"symbol"`
	Description string              `json:"description" yaml:"description"`
	Arity       string              `json:"arity" yaml:"arity"`
	Operands    []operation.Operand `json:"operands,omitempty" yaml:"operands,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the operation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			var entries []catalogEntry
			for _, op := range a.newCalculator().Operations() {
				entries = append(entries, catalogEntry{
					Symbol:      op.Symbol,
					Description: op.Description,
					Arity:       op.Arity.String(),
					Operands:    op.Operands,
				})
			}

			switch strings.ToLower(format) {
			case "text":
				return writeText(a, entries)
			case "json":
				_, err := fmt.Fprintln(a.out, utils.JSONToString(entries, true))
				return err
			case "yaml":
				encoder := yaml.NewEncoder(a.out)
				encoder.SetIndent(2)
				if err := encoder.Encode(entries); err != nil {
					return err
				}
				return encoder.Close()
			default:
				return &ExitError{Code: 2, Err: fmt.Errorf("unknown format %q (want text, json or yaml)", format)}
			}
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func writeText(a *app, entries []catalogEntry) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tARITY\tOPERANDS\tDESCRIPTION")
	for _, entry := range entries {
		names := make([]string, 0, len(entry.Operands))
		for _, operand := range entry.Operands {
			names = append(names, operand.Name)
		}
		operands := strings.Join(names, ", ")
		if operands == "" {
			operands = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Symbol, entry.Arity, operands, entry.Description)
	}
	return w.Flush()
}
