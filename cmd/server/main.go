package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grigory222/llm-chat-backend/internal/app"
	"github.com/grigory222/llm-chat-backend/internal/config"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

const resetTimeout = 30 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	switch flag.Arg(0) {
	case "":
	case "reset":
		os.Exit(runReset(log, cfg))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", flag.Arg(0))
		os.Exit(1)
	}

	log.Info("starting application", slog.String("env", cfg.Env), slog.Int("port", cfg.HTTP.Port))

	application := app.New(log, cfg)

	go application.HTTPSrv.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sig := <-stop
	log.Info("stopping application", slog.String("signal", sig.String()))

	application.Stop()

	log.Info("application stopped")
}

// runReset сбрасывает тестовую базу для чистого старта.
func runReset(log *slog.Logger, cfg *config.Config) int {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	if err := app.Reset(ctx, log, cfg); err != nil {
		log.Error("failed to reset database", slog.Any("err", err))
		return 1
	}

	log.Info("database reset, exiting")
	return 0
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return log
}
