// Hotel fixture site
//
// This server serves a local copy of the HOTEL PLANISPHERE practice pages
// plus the posts and zipcode APIs, so the e2e suite can be pointed at it
// instead of the public sites.
//
// Usage:
//
//	go run ./cmd/hotel-site --addr :8080
//	HOTEL_BASE_URL=http://localhost:8080 API_BASE_URL=http://localhost:8080 \
//	ZIP_BASE_URL=http://localhost:8080 go test -tags=e2e ./e2e/...
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thesyncim/planisphere-e2e/cmd/hotel-site/server"
)

var (
	addr    string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "hotel-site",
		Short: "Serve the hotel practice site and APIs locally",
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := server.DefaultConfig()
	cfg.Addr = addr
	cfg.Logger = log

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if _, err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	log.Infof("Open %s/ja/ in a browser", srv.URL())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
