package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/database"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/engine"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/handlers"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/logging"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/middleware"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/remote"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/routes"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/services"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.BridgeSecret == "" {
		secret, err := services.GenerateSecret()
		if err != nil {
			slog.Error("failed to generate bridge secret", "error", err)
			os.Exit(1)
		}
		cfg.BridgeSecret = secret
		slog.Warn("BRIDGE_SECRET not set, using an ephemeral secret for this run")
	}

	// Local store
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Store log handler (ERROR+ async batch)
	storeLogHandler := logging.NewStoreHandler(db, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewConsoleHandler(os.Stdout, cfg.LogLevel),
		storeLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetention, cleanupDone)

	// Session engine
	eng := engine.New(storage.NewStore(db), remote.NewClient(cfg), engine.Options{
		HistoryWindow:  cfg.ChatHistoryWindow,
		TrialDuration:  cfg.TrialDuration,
		RequestTimeout: cfg.AITimeout,
	})
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	eng.Initialize(initCtx)
	cancelInit()
	if !cfg.RemoteEnabled() {
		slog.Warn("CHAT_API_KEY not set, chat replies will use the fallback message")
	}

	// Bridge token for the UI shell
	tokenService := services.NewTokenService(cfg)
	token, expiresAt, err := tokenService.Issue()
	if err != nil {
		slog.Error("failed to issue bridge token", "error", err)
		os.Exit(1)
	}
	if err := services.WriteTokenFile(cfg.BridgeTokenFile, token); err != nil {
		slog.Error("failed to write bridge token", "path", cfg.BridgeTokenFile, "error", err)
		os.Exit(1)
	}
	slog.Info("bridge token issued", "path", cfg.BridgeTokenFile, "expires_at", expiresAt)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(eng)
	purchaseHandler := handlers.NewPurchaseHandler(services.NewPurchaseService(eng))

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, healthHandler, sessionHandler, purchaseHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := "127.0.0.1:" + cfg.Port
		slog.Info("bridge starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("bridge failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down bridge...")

	close(cleanupDone)
	// Closing the engine ends every event stream.
	eng.Close()

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		slog.Error("bridge shutdown error", "error", err)
	}

	storeLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("bridge stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "component", "bridge", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
}
