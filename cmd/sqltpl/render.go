package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Substitute JSON arguments into a template",
		Example: `  sqltpl render 'SELECT * FROM t WHERE id = ?d' --args '[42]'
  sqltpl render 'UPDATE t SET ?a' --args '[{"a": 1, "b": "x"}]'
  sqltpl render 'SELECT * FROM t{ WHERE id = ?d}' --args '["__SKIP__"]'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}

			rawArgs, _ := cmd.Flags().GetString("args")
			skipToken, _ := cmd.Flags().GetString("skip-token")
			values, err := parseArgs(rawArgs, skipToken)
			if err != nil {
				return err
			}

			b, err := newBuilder(cmd)
			if err != nil {
				return err
			}

			out, err := b.Build(template, values...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "read the template from a file")
	cmd.Flags().StringP("args", "a", "[]", "arguments as a JSON array")
	cmd.Flags().String("skip-token", "__SKIP__", "JSON string that stands for the skip marker")
	return cmd
}
