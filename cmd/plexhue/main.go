package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "plex-hue-webhook/internal/adapters/input/http"
	"plex-hue-webhook/internal/adapters/output/hue"
	"plex-hue-webhook/internal/adapters/output/persistence"
	"plex-hue-webhook/internal/domain/service"
	"plex-hue-webhook/internal/logging"
	"plex-hue-webhook/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var (
	cfgFile string
	listen  string
)

var rootCmd = &cobra.Command{
	Use:   "plexhue",
	Short: "Dim Hue lights when Plex starts playing at night",
	Long: `plexhue receives Plex webhooks on /plex/webhook and switches a set of
Philips Hue lights off when a movie or episode starts, and back on when it
stops. Lights are only touched between 20:00 and 06:00 local time.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file (environment variables take precedence)")
	rootCmd.Flags().StringVar(&listen, "listen", "", "listen address, overrides LISTEN_ADDR (default :20000)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("plexhue stopped")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := persistence.NewViperConfigRepository(cfgFile, ".env").Get(cmd.Context())
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	logging.Setup(cfg.Log)
	log.Info().Strs("whitelist", cfg.Whitelist).Ints("lights", cfg.Lights).
		Str("bridge", cfg.Bridge.Address).Msg("Starting plexhue")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	hueClient := hue.NewClient(cfg.Bridge.Address, cfg.Bridge.Token, m)
	dispatcher := service.NewDispatcher(
		service.NewLightController(hueClient, cfg.Lights),
		service.NewNightGate(time.Now),
	)
	webhook := service.NewWebhookService(service.NewAuthorizer(cfg.Whitelist), dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpadapter.NewServer(webhook, m, reg).ListenAndServe(ctx, cfg.Listen, shutdownTimeout)
}
