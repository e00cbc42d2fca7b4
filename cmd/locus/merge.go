package main

import (
	"fmt"

	"github.com/praetorian-inc/locus/pkg/store"
	"github.com/spf13/cobra"
)

var (
	mergeOutput string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <source1.db> <source2.db> [source3.db...]",
	Short: "Merge multiple reference stores",
	Long: `Merge multiple SQLite reference stores into a single output store.

Records already present in the output are skipped. A record whose
accession and version exist with a different sequence is counted as a
conflict and left as it was.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged.db", "Output database path")
}

func runMerge(cmd *cobra.Command, args []string) error {
	stats, err := store.Merge(store.MergeConfig{
		SourcePaths: args,
		DestPath:    mergeOutput,
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merge complete:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Sources processed: %d\n", stats.SourcesProcessed)
	fmt.Fprintf(cmd.OutOrStdout(), "  Sequences merged: %d\n", stats.SequencesMerged)
	fmt.Fprintf(cmd.OutOrStdout(), "  Sequences skipped: %d\n", stats.SequencesSkipped)
	fmt.Fprintf(cmd.OutOrStdout(), "  Conflicts: %d\n", stats.Conflicts)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", mergeOutput)

	return nil
}
