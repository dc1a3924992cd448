// Package main provides the entry point for the ivec CLI tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystalix007/interval-vec/internal/config"
)

// version is overridden at build time through -ldflags.
var version = "dev"

// app carries the state shared by every command.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the ivec command tree.
func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ivec",
		Short: "Run-length compressed sequences",
		Long: `ivec loads values into a run-length compressed sequence and reports
how well it compresses.

Commands:
  encode    Push one value per input line and report the result
  apply     Run a script of push/insert/set/get operations`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file (default ./ivec.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("format", "table", "report format: table, json or yaml")
	flags.Bool("color", true, "color the table report")

	rootCmd.AddCommand(a.encodeCommand())
	rootCmd.AddCommand(a.applyCommand())
	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

// load reads the configuration and sets up logging before any command runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logging.Logger(cmd.ErrOrStderr())

	return nil
}

// openInput returns the file named by the first argument, or the command's
// standard input when there is none or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}

	return file, args[0], nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ivec %s\n", version)
		},
	}
}
