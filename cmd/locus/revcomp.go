package main

import (
	"fmt"

	"github.com/praetorian-inc/locus"
	"github.com/praetorian-inc/locus/pkg/store"
	"github.com/praetorian-inc/locus/pkg/types"
	"github.com/spf13/cobra"
)

var revcompCmd = &cobra.Command{
	Use:   "revcomp [sequence...]",
	Short: "Reverse-complement sequences",
	Long: `Print the reverse complement of each sequence argument.

With no arguments, FASTA records are read from stdin and written back
reverse-complemented. IUPAC ambiguity codes are complemented, case is
preserved and any other byte is left unchanged.`,
	RunE: runRevcomp,
}

func runRevcomp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, arg := range args {
			fmt.Fprintln(out, string(locus.ReverseComplement([]byte(arg))))
		}
		return nil
	}

	return store.ScanFASTA(cmd.InOrStdin(), func(rec *types.SequenceRecord) error {
		return store.WriteFASTA(out, rec.Key(), rec.Description, locus.ReverseComplement(rec.Sequence), cfg.Output.FASTAWidth)
	})
}
