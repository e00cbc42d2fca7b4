package main

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/locus"
	"github.com/praetorian-inc/locus/pkg/store"
	"github.com/praetorian-inc/locus/pkg/types"
	"github.com/spf13/cobra"
)

var (
	resolveHost   string
	resolveHostID string
	resolveID     string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <location> [location...]",
	Short: "Assemble the sequences described by location expressions",
	Long: `Resolve one or more location expressions into sequences.

Local elements are read from the host sequence given with --host (a FASTA
file; the first record is used unless --host-id names another). Remote
elements are looked up in the reference store configured with --store,
--dsn or the config file.

Locations are resolved concurrently. A failing location is reported on
stderr and does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveHost, "host", "", "FASTA file holding the host sequence")
	resolveCmd.Flags().StringVar(&resolveHostID, "host-id", "", "Record ID to use from the host file")
	resolveCmd.Flags().StringVar(&resolveID, "id", "", "Sequence ID for fasta output (default: the location)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var host locus.Host
	if resolveHost != "" {
		rec, err := loadHost(resolveHost, resolveHostID)
		if err != nil {
			return err
		}
		if verbose {
			logf(cmd, "host %s: %d bp\n", rec.Key(), rec.Length)
		}
		host = locus.BytesHost(rec.Sequence)
	}

	engine, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	reqs := make([]locus.Request, len(args))
	for i, arg := range args {
		id := arg
		if resolveID != "" {
			id = resolveID
			if len(args) > 1 {
				id = fmt.Sprintf("%s_%d", resolveID, i+1)
			}
		}
		reqs[i] = locus.Request{ID: id, Location: arg, Host: host}
	}

	results, err := engine.ResolveAll(cmdContext(cmd), reqs)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cfg)
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			p.printFailure(cmd.ErrOrStderr(), args[i], r.Err)
			failed++
			continue
		}
		if err := p.printResult(r.ID, r.Result); err != nil {
			return err
		}
	}

	if stats, ok := engine.CacheStats(); ok && verbose {
		logf(cmd, "lookup cache: %d hits, %d misses, %d entries\n", stats.Hits, stats.Misses, stats.Len)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d locations failed to resolve", failed, len(args))
	}
	return nil
}

// loadHost reads the host record from a FASTA file.
func loadHost(path, id string) (*types.SequenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening host: %w", err)
	}
	defer f.Close()

	records, err := store.ReadFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("reading host %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("host %s holds no sequences", path)
	}
	if id == "" {
		return records[0], nil
	}
	for _, rec := range records {
		if rec.Key() == id || rec.Accession == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("host %s has no record %q", path, id)
}
