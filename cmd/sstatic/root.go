package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/sstatic/internal/config"
	handler "github.com/MKhiriev/sstatic/internal/handler/http"
	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/server"
	"github.com/MKhiriev/sstatic/internal/service"
	"github.com/MKhiriev/sstatic/internal/store"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the sstatic command. The configuration flags are bound
// before cobra adds its help flag, so -h stays the html flag and help is
// only available as --help.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sstatic",
		Short: "Serve a maintenance page with a strict Content-Security-Policy",
		Long: `sstatic answers every request with a single HTML page and a 503 status.
Inline styles and scripts are minified and pinned in the Content-Security-Policy
by their SHA-256 hashes. Static files can optionally be served under one route.

Settings are read from defaults, SSTATIC_* environment variables, an optional
YAML or JSON config file and the command line, later sources taking precedence.`,
		Version:       buildInfo(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	layer := config.BindFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, layer, verbose)
	}

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, layer *config.Layer, verbose bool) error {
	log := logger.NewLogger("sstatic", verbose)

	cfg, err := config.Load(layer)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}

	services := service.NewServices(storages, cfg, log)
	h := handler.NewHandler(services, cfg.StaticPath, log)

	srv, err := server.NewServer(h.Init(), cfg.Address(), log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.Run(cmd.Context())
}
