package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crystalix007/interval-vec/internal/report"
	"github.com/crystalix007/interval-vec/interval"
)

func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Push one value per input line and report the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer input.Close()

			values := interval.New[string]()

			scanner := bufio.NewScanner(input)
			for scanner.Scan() {
				values.Push(scanner.Text())
			}

			if scanErr := scanner.Err(); scanErr != nil {
				return fmt.Errorf("failed to read %s: %w", name, scanErr)
			}

			stats := values.Stats()

			a.logger.Info("encoded input",
				"source", name,
				"length", stats.Length,
				"runs", stats.Nodes,
				"height", stats.Height,
			)

			return report.Write(cmd.OutOrStdout(), a.cfg.Report.Format, report.NewSummary(stats, 0), a.cfg.Report.Color)
		},
	}
}
