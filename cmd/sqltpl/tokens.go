package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Konsultn-Engineering/sqltpl/query"
	"github.com/Konsultn-Engineering/sqltpl/specifier"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [template]",
		Short: "List the placeholders and blocks found in a template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OFFSET\tKIND\tSPECIFIER\tTEXT")
			for _, tok := range query.Scan(template) {
				spec := "-"
				if tok.Kind == query.TokenPlaceholder {
					spec = "unknown"
					if kind, ok := specifier.Lookup(tok.Symbol()); ok {
						spec = kind.String()
					}
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%q\n", tok.Pos, tok.Kind, spec, tok.Text)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("file", "f", "", "read the template from a file")
	return cmd
}
