package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/locus/pkg/serve"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming server",
	Long: `Run Locus as a long-lived streaming server that accepts parse and
resolve requests via stdin and writes results to stdout using NDJSON.

The reference store is opened once at startup and requests are processed
until stdin closes, a close request arrives or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(cmdContext(cmd))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	engine, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	srv := serve.NewServer(engine, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
