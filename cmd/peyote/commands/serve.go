package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dyluth/peyote/internal/cache"
	"github.com/dyluth/peyote/internal/config"
	"github.com/dyluth/peyote/internal/printer"
	"github.com/dyluth/peyote/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	cachePingWait   = 5 * time.Second
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bead calculator web form",
	Long: `Serve the bead calculator form and results pages over HTTP.

Configuration is read from peyote.yml when --config is given, otherwise
defaults are used. PEYOTE_PORT and REDIS_URL override the file.

Endpoints:
  /              entry form
  /bead_results  results page (beads_entered query parameter)
  /api/suggest   JSON result (beads query parameter)
  /healthz       health check

Examples:
  # Serve on the default address
  peyote serve

  # Serve with a config file on a different port
  peyote serve --config peyote.yml --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to peyote.yml")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// loadServeConfig resolves file, environment and flag settings in that order.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return printer.Error(
			"invalid configuration",
			err.Error(),
			[]string{"Check peyote.yml, PEYOTE_PORT and REDIS_URL"},
		)
	}

	logger, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []web.Option{web.WithLogger(logger)}
	if cfg.Cache.Enabled() {
		client, err := cache.NewClientFromURL(cfg.Cache.RedisURL, cfg.Cache.Namespace, cfg.Cache.TTL)
		if err != nil {
			return printer.Error("invalid cache configuration", err.Error(), []string{"Check cache.redis_url or REDIS_URL"})
		}
		defer client.Close()

		// An unreachable cache degrades to direct computation
		pingCtx, cancel := context.WithTimeout(ctx, cachePingWait)
		if err := client.Ping(pingCtx); err != nil {
			logger.Warn("result cache unreachable, continuing without hits", zap.Error(err))
		} else {
			logger.Info("result cache connected", zap.String("namespace", cfg.Cache.Namespace))
		}
		cancel()

		opts = append(opts, web.WithCache(client))
	}

	srv, err := web.NewServer(cfg.Server, renderer, opts...)
	if err != nil {
		return err
	}

	if err := srv.Start(ctx); err != nil {
		return printer.Error(
			"failed to start server",
			err.Error(),
			[]string{"Choose a free port with --port", "Stop the process already using the port"},
		)
	}
	printer.Success("Serving bead calculator on http://%s\n", srv.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
