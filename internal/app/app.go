package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/grigory222/llm-chat-backend/internal/config"
	"github.com/grigory222/llm-chat-backend/internal/services/users"
	"github.com/grigory222/llm-chat-backend/internal/storage"
	"github.com/grigory222/llm-chat-backend/internal/storage/postgres"

	httpapp "github.com/grigory222/llm-chat-backend/internal/app/http"
)

const startupTimeout = 10 * time.Second

type App struct {
	HTTPSrv *httpapp.App
	Storage storage.Storage
}

// New подключается к базе, создает таблицы и собирает HTTP-приложение.
func New(log *slog.Logger, cfg *config.Config) *App {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	connStr, err := cfg.Postgres.ConnString(false)
	if err != nil {
		panic("failed to select connection string: " + err.Error())
	}

	pgStorage, err := postgres.New(ctx, connStr, cfg.Postgres, log)
	if err != nil {
		panic("failed to init storage: " + err.Error())
	}

	return build(ctx, log, cfg, pgStorage)
}

func build(ctx context.Context, log *slog.Logger, cfg *config.Config, st storage.Storage) *App {
	if err := st.CreateTables(ctx); err != nil {
		st.Close()
		panic("failed to create tables: " + err.Error())
	}

	usersService := users.New(log, st)

	return &App{
		HTTPSrv: httpapp.New(log, cfg.Env, cfg.HTTP, usersService),
		Storage: st,
	}
}

func (a *App) Stop() {
	a.HTTPSrv.Stop()
	a.Storage.Close()
}

// Reset drops and recreates the schema on the testing database.
func Reset(ctx context.Context, log *slog.Logger, cfg *config.Config) error {
	connStr, err := cfg.Postgres.ConnString(true)
	if err != nil {
		return err
	}

	st, err := postgres.New(ctx, connStr, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer st.Close()

	return resetSchema(ctx, st)
}

func resetSchema(ctx context.Context, st storage.Storage) error {
	if err := st.Reset(ctx); err != nil {
		return err
	}
	return st.CreateTables(ctx)
}
