package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toruinaba/structools/internal/api"
	"github.com/toruinaba/structools/internal/config"
	"github.com/toruinaba/structools/internal/logging"
	"github.com/toruinaba/structools/internal/service"
	"github.com/toruinaba/structools/internal/version"
)

var (
	serveEnvFiles []string
	servePort     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the section service over HTTP",
	Long: `Run the HTTP service. Sections are created with POST /api/sections and
addressed by the returned ID; properties and width-thickness checks are
read from /api/sections/{id}/properties and /api/sections/{id}/width-thickness.
POST /api/properties/batch evaluates many definitions at once.

Prometheus metrics are served at /metrics and a liveness probe at /healthz.

Configuration is read from the environment (STRUCTOOLS_PORT,
STRUCTOOLS_LOG_LEVEL, STRUCTOOLS_RATE_LIMIT_RPS, ...) after loading
the dotenv files given with --env-file (default .env).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringSliceVar(&serveEnvFiles, "env-file", nil, "Dotenv files to load (default .env)")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides STRUCTOOLS_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveEnvFiles...)
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	logger, err := logging.New(cfg.Logging.Logger())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting structools",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.Int("batch_workers", cfg.Batch.Workers),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	svc := service.New(logger, service.WithWorkers(cfg.Batch.Workers))

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return api.NewServer(svc, cfg, logger).Run(ctx)
}
