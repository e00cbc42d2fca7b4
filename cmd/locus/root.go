package main

import (
	"context"
	"fmt"
	"io"

	"github.com/praetorian-inc/locus"
	"github.com/praetorian-inc/locus/pkg/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	tolerant   bool
	storePath  string
	storeDSN   string
	formatFlag string
	colorFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "locus",
	Short: "Locus - genomic location parser and sequence assembler",
	Long: `Locus parses feature location expressions such as
"join(complement(1..100),AB012345.2:50..60,200..>300)" and assembles the
sequences they describe from a host sequence and a store of reference
sequences.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&tolerant, "tolerant", false, "Drop partiality markers that cannot be attributed instead of failing")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "SQLite reference store path")
	rootCmd.PersistentFlags().StringVar(&storeDSN, "dsn", "", "PostgreSQL reference store DSN (overrides --store)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: human, json, fasta, raw")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(revcompCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads --config and applies the persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if tolerant {
		cfg.Parser.Tolerant = true
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if storeDSN != "" {
		cfg.Store.DSN = storeDSN
	}
	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stderrLogger writes engine diagnostics to the command's stderr.
type stderrLogger struct {
	w io.Writer
}

func (l stderrLogger) Log(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// newEngine builds an engine from the loaded configuration.
func newEngine(cmd *cobra.Command, cfg *config.Config) (*locus.Engine, error) {
	opts := []locus.Option{locus.WithConfig(cfg)}
	if verbose && !quiet {
		opts = append(opts, locus.WithLogger(stderrLogger{w: cmd.ErrOrStderr()}))
	}
	return locus.NewWithContext(cmdContext(cmd), opts...)
}

// cmdContext returns the command's context, or Background when the
// handler is invoked directly.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// logf writes a diagnostic unless --quiet is set.
func logf(cmd *cobra.Command, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
