package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/dtclock/internal/config"
	"github.com/danmuck/dtclock/internal/logging"
	"github.com/danmuck/dtclock/internal/observability"
	"github.com/danmuck/dtclock/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to server config toml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: dtserver [-config path] [english_port maori_port german_port]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logging.ConfigureRuntime("dtserver")

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load server config")
	}
	if err := applyPortArgs(&cfg, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("dtserver stopped")
		os.Exit(1)
	}
}

func run(cfg server.Config) error {
	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	if err := srv.Open(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}
	return srv.Serve(ctx)
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	hs := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn().Err(err).Msg("metrics listener stopped")
	}
}
