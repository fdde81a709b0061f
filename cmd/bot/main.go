package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taqvim_bot/internal/config"
	"taqvim_bot/internal/feature/imagepdf"
	"taqvim_bot/internal/feature/mosque"
	"taqvim_bot/internal/feature/prayer"
	"taqvim_bot/internal/feature/weather"
	"taqvim_bot/internal/health"
	"taqvim_bot/internal/logging"
	"taqvim_bot/internal/telegram"
)

const (
	telegramShutdownTimeout = 10 * time.Second
	healthShutdownTimeout   = 5 * time.Second
)

func main() {
	configOnly := flag.Bool("config-only", false, "load and print configuration then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("configuration error", logging.Fields{"error": err})
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Setup(cfg)
	if err != nil {
		logging.Error("logger setup error", logging.Fields{"error": err})
		fmt.Fprintf(os.Stderr, "logger setup error: %v\n", err)
		os.Exit(1)
	}

	if *configOnly {
		logging.Info("configuration check", logging.Fields{"event": "config_only"})
		fmt.Println("configuration check: ok")
		fmt.Println(config.FormatRedacted(cfg))
		return
	}

	logger.WithField("event", "startup").Info("configuration loaded")

	prayerClient := prayer.NewClient(cfg.PrayerAPIURL, logger)
	mosqueClient := mosque.NewClient(cfg.OverpassAPIURL, logger)
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, logger)

	router := telegram.NewRouter(prayerClient, mosqueClient, weatherClient, imagepdf.Convert, logger)

	tgClient, err := telegram.NewClient(cfg, router, logger)
	if err != nil {
		logger.WithError(err).Error("telegram client setup error")
		fmt.Fprintf(os.Stderr, "telegram client setup error: %v\n", err)
		os.Exit(1)
	}

	logger.WithField("event", "telegram_ready").Info("telegram client initialized")

	healthServer := health.NewServer(cfg.HTTPPort, logger)
	go func() {
		if err := healthServer.ListenAndServe(); err != nil {
			logger.WithError(err).Error("health server error")
		}
	}()

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telegramCtx, cancelTelegram := context.WithCancel(context.Background())
	tgDone := make(chan struct{})

	go func() {
		tgClient.Start(telegramCtx)
		close(tgDone)
	}()

	select {
	case <-signalCtx.Done():
		logger.WithField("event", "shutdown_signal").Info("received termination signal, stopping telegram polling")
	case <-tgDone:
		logging.Warn("telegram client stopped before shutdown signal", logging.Fields{"event": "telegram_stopped_early"})
	}

	cancelTelegram()

	waitCtx, cancelWait := context.WithTimeout(context.Background(), telegramShutdownTimeout)
	select {
	case <-tgDone:
	case <-waitCtx.Done():
		logging.Warn("timed out waiting for telegram client to stop", logging.Fields{"event": "telegram_shutdown_timeout"})
	}
	cancelWait()

	healthCtx, cancelHealth := context.WithTimeout(context.Background(), healthShutdownTimeout)
	if err := healthServer.Shutdown(healthCtx); err != nil {
		logger.WithError(err).Error("health server shutdown error")
	}
	cancelHealth()

	logger.WithField("event", "shutdown_complete").Info("shutdown complete")
}
