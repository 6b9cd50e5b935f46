package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/internal/api"
	"github.com/reactome-tools/reaction-layout/pkg/cache"
	"github.com/reactome-tools/reaction-layout/pkg/metrics"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

func newServeCmd(c **CLI) *cobra.Command {
	var (
		addr         string
		ontologyPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*c).runServe(cmd.Context(), addr, ontologyPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8090", "address to listen on")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to a JSON compartment ontology (required)")
	cmd.MarkFlagRequired("ontology")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, ontologyPath string) error {
	logger := loggerFromContext(ctx)

	ontFile, err := os.Open(ontologyPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", ontologyPath, err)
	}
	defer ontFile.Close()

	dag, err := onto.ReadDAG(ontFile)
	if err != nil {
		return fmt.Errorf("decode ontology: %w", err)
	}

	store, err := c.newCache(ctx)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	metrics.Register()

	srv := api.NewServer(api.Config{
		Addr:    addr,
		DAG:     dag,
		Cache:   store,
		Keyer:   cache.NewDefaultKeyer(),
		TreeTTL: c.treeTTL(),
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	logger.Infof("serving on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	}
}
