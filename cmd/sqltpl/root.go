package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Konsultn-Engineering/sqltpl/config"
	"github.com/Konsultn-Engineering/sqltpl/query"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sqltpl",
		Short:         "Render parameterized query templates",
		Long:          `sqltpl substitutes typed placeholders and conditional blocks in query templates`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("color")
			switch mode {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			case "auto":
			default:
				return fmt.Errorf("invalid --color value: %s", mode)
			}
			return nil
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to a YAML or TOML config file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newTokensCmd())
	return root
}

// newBuilder creates a query builder from the --config flag. The CLI has no
// database connection, so the builder carries a nil handle.
func newBuilder(cmd *cobra.Command) (*query.Builder, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	return query.NewFromConfig(nil, cfg, query.WithLogger(logger))
}

// readTemplate takes the template from the --file flag or the single argument.
func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("give the template either as an argument or with --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	}
	return "", fmt.Errorf("missing template")
}
