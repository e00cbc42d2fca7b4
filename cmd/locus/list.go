package main

import (
	"fmt"

	"github.com/praetorian-inc/locus/pkg/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sequences in the reference store",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ListSequences(cmdContext(cmd))
	if err != nil {
		return fmt.Errorf("listing sequences: %w", err)
	}

	p := newPrinter(cmd.OutOrStdout(), cfg)
	switch cfg.Output.Format {
	case config.FormatJSON:
		return p.json(records)
	case config.FormatFASTA:
		return fmt.Errorf("fasta output is not available for list")
	}
	for _, rec := range records {
		if cfg.Output.Format == config.FormatRaw {
			fmt.Fprintln(p.out, rec.Key())
			continue
		}
		fmt.Fprintf(p.out, "%s\t%d bp\t%s\t%s\n",
			p.styles.accession.Sprint(rec.Key()),
			rec.Length,
			p.styles.metadata.Sprint(rec.Digest),
			rec.Description)
	}
	return nil
}
