package httpapp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grigory222/llm-chat-backend/internal/config"
	"github.com/grigory222/llm-chat-backend/internal/http/middleware"
	"github.com/grigory222/llm-chat-backend/internal/http/roothttp"
	"github.com/grigory222/llm-chat-backend/internal/http/userhttp"
)

const (
	envLocal = "local"
	envProd  = "prod"
	envTest  = "test"
)

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

func New(log *slog.Logger, env string, cfg config.HTTP, users userhttp.UserService) *App {
	switch env {
	case envProd:
		gin.SetMode(gin.ReleaseMode)
	case envTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(log))

	roothttp.Register(engine)
	userhttp.Register(engine, log, users)

	return &App{
		log: log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		port: cfg.Port,
	}
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	a.log.Info("http server started", slog.String("op", op), slog.Int("port", a.port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Stop closes the listener and any open connections at once.
func (a *App) Stop() {
	const op = "httpapp.Stop"

	a.log.Info("stopping http server", slog.String("op", op), slog.Int("port", a.port))

	if err := a.httpServer.Close(); err != nil {
		a.log.Error("failed to close http server", slog.Any("err", err))
	}
}
