package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseOwner string

var parseCmd = &cobra.Command{
	Use:   "parse <location> [location...]",
	Short: "Parse location expressions",
	Long: `Parse one or more location expressions and print their structure.

Each expression is checked against the location grammar, including the
placement of partiality markers. With --format raw the canonical rendering
is printed, one per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseOwner, "owner", "", "Feature name reported in parse errors")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	p := newPrinter(cmd.OutOrStdout(), cfg)
	failed := 0
	for _, arg := range args {
		c, err := engine.ParseFor(parseOwner, arg)
		if err != nil {
			p.printFailure(cmd.ErrOrStderr(), arg, err)
			failed++
			continue
		}
		if err := p.printParsed(arg, c); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d locations failed to parse", failed, len(args))
	}
	return nil
}
