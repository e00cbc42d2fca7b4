package main

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/locus/pkg/config"
	"github.com/praetorian-inc/locus/pkg/store"
	"github.com/spf13/cobra"
)

var importWorkers int

var importCmd = &cobra.Command{
	Use:   "import <file.fa> [file.fa...]",
	Short: "Import FASTA records into the reference store",
	Long: `Import FASTA records into the reference store so remote locations can
be resolved against them.

Record IDs are read as ACC.VER. Importing a record that is already stored
with the same sequence is a no-op; a different sequence under the same
accession and version is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVarP(&importWorkers, "workers", "w", 0, "Concurrent writers (default: assembler.workers)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	workers := importWorkers
	if workers <= 0 {
		workers = cfg.Assembler.Workers
	}

	var total store.ImportStats
	for _, path := range args {
		stats, err := importFile(cmd, s, path, workers)
		if err != nil {
			return err
		}
		if verbose {
			logf(cmd, "%s: %d records, %d bases\n", path, stats.Records, stats.Bases)
		}
		total.Records += stats.Records
		total.Bases += stats.Bases
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Import complete:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  Files processed: %d\n", len(args))
		fmt.Fprintf(cmd.OutOrStdout(), "  Records: %d\n", total.Records)
		fmt.Fprintf(cmd.OutOrStdout(), "  Bases: %d\n", total.Bases)
	}
	return nil
}

func importFile(cmd *cobra.Command, s store.Store, path string, workers int) (*store.ImportStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	stats, err := store.ImportFASTA(cmdContext(cmd), s, f, workers)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return stats, nil
}

// openStore opens the configured reference store. A store is required.
func openStore(cmd *cobra.Command, cfg *config.Config) (store.Store, error) {
	if cfg.Store.Path == "" && cfg.Store.DSN == "" {
		return nil, fmt.Errorf("no reference store configured (use --store, --dsn or the config file)")
	}
	s, err := store.New(cmdContext(cmd), store.Config{Path: cfg.Store.Path, DSN: cfg.Store.DSN})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return s, nil
}
