package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/Tore489/getgems-bot/internal/config"
	"github.com/Tore489/getgems-bot/internal/infrastructure/getgems"
	"github.com/Tore489/getgems-bot/internal/infrastructure/notifier"
	"github.com/Tore489/getgems-bot/internal/transport/bot"
	"github.com/Tore489/getgems-bot/internal/worker"
	"github.com/Tore489/getgems-bot/pkg/contextx"
	"github.com/Tore489/getgems-bot/pkg/metrics"
	"github.com/Tore489/getgems-bot/pkg/probe"
)

const (
	appName    = "getgems-bot"
	appVersion = "dev"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{ //nolint:exhaustruct
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", "error", err)
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	source := getgems.NewClient(
		cfg.Getgems.BaseURL,
		cfg.Getgems.APIKey,
		getgems.WithTimeout(cfg.Getgems.Timeout),
		getgems.WithHTTPDebug(cfg.Getgems.HTTPDebug),
	)
	defer source.Close()

	tgNotifier, err := notifier.NewTelegramBot(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("notifier bot: %w", err)
	}

	monitor := worker.NewMonitor(source, tgNotifier, cfg.Monitor.Interval, cfg.Monitor.InitialDelay)

	tgBot, err := bot.New(ctx, cfg, tgNotifier.Bot(), monitor)
	if err != nil {
		return fmt.Errorf("bot create: %w", err)
	}

	mode := "long polling"
	if cfg.Webhook.Enabled() {
		mode = "webhook"
	}
	log.Info("starting", "mode", mode, "interval", cfg.Monitor.Interval)

	g, ctx := errgroup.WithContext(ctx)

	probeServer := probe.NewServer(cfg.Observability.ProbeAddress, probe.Options{
		Name:    appName,
		Version: appVersion,
	})
	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	metricsServer := metrics.NewPrometheusServer(cfg.Observability.MetricsAddress)
	g.Go(func() error {
		return metricsServer.Run(ctx)
	})

	g.Go(func() error {
		return monitor.Run(ctx)
	})

	g.Go(func() error {
		return tgBot.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
