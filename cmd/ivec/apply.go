package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crystalix007/interval-vec/internal/report"
	"github.com/crystalix007/interval-vec/internal/script"
	"github.com/crystalix007/interval-vec/interval"
)

// errOperationsFailed is returned by apply in strict mode when any operation
// failed.
var errOperationsFailed = errors.New("operations failed")

func (a *app) applyCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "apply [script]",
		Short: "Run a script of push/insert/set/get operations",
		Long: `apply runs a script against an empty sequence, one operation per line:

  push VALUE
  insert INDEX VALUE
  set INDEX VALUE
  get INDEX

The value read by each get is printed on its own line, followed by the report.
Failed operations are logged and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer input.Close()

			ops, err := script.Parse(input)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", name, err)
			}

			out := cmd.OutOrStdout()
			values := interval.New[string]()

			failed := script.Run(values, ops, func(result script.Result) {
				switch {
				case result.Err != nil:
					a.logger.Warn("operation failed",
						"line", result.Op.Line,
						"op", result.Op.Kind.String(),
						"error", result.Err,
					)
				case result.Op.Kind == script.Get:
					fmt.Fprintln(out, result.Value)
				}
			})

			stats := values.Stats()

			a.logger.Info("applied script",
				"source", name,
				"ops", len(ops),
				"failed", failed,
				"length", stats.Length,
				"runs", stats.Nodes,
			)

			writeErr := report.Write(out, a.cfg.Report.Format, report.NewSummary(stats, failed), a.cfg.Report.Color)
			if writeErr != nil {
				return writeErr
			}

			if strict && failed > 0 {
				return fmt.Errorf("%w: %d of %d", errOperationsFailed, failed, len(ops))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any operation fails")

	return cmd
}
