package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/bridge"
	"github.com/rives-io/rives-aggregator/internal/config"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/providers/jetstream"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	inputFile  = flag.String("file", "-", "Notice envelopes, one JSON document per line (- for stdin)")
	strict     = flag.Bool("strict", false, "Abort on the first undecodable line instead of skipping it")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadNoticeBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Service:         "notice-replay",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	var input io.Reader = os.Stdin
	if *inputFile != "-" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to open notice file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer f.Close()
		input = f
	}

	publisher, err := jetstream.NewPublisher(
		jetstream.Config{
			URL:            cfg.NATS.URL,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "notice-replay",
		},
		adapter.NewNatsJetStream(),
		adapter.NewJSON(),
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notice publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Stop between lines on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	stats, err := bridge.Replay(ctx, input, publisher, adapter.NewJSON(), *strict)
	logger.InfoCtx(ctx, "Replay finished",
		zap.Int("published", stats.Published),
		zap.Int("skipped", stats.Skipped))
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("component", "replay"))
	}
}
