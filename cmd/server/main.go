package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Eldoprano/test-drive-peru-A1/internal/api"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
	"github.com/Eldoprano/test-drive-peru-A1/internal/infrastructure/config"
	"github.com/Eldoprano/test-drive-peru-A1/internal/service"
	"github.com/Eldoprano/test-drive-peru-A1/internal/store"

	_ "github.com/Eldoprano/test-drive-peru-A1/docs" // generated swagger docs
)

// @title           Driving Theory Practice API
// @version         1.0
// @description     Adaptive driving theory practice: random, sequential and timed test sessions with per-question mastery tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	bank, err := questionbank.LoadFile(cfg.QuestionBankPath)
	if err != nil {
		var loadErr *questionbank.LoadError
		if errors.As(err, &loadErr) {
			logger.Error("question bank is invalid", "path", cfg.QuestionBankPath, "reason", loadErr.Reason, "error", loadErr.Wrapped)
		} else {
			logger.Error("failed to load question bank", "path", cfg.QuestionBankPath, "error", err)
		}
		os.Exit(1)
	}
	logger.Info("question bank loaded", "questions", bank.Len())

	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	progressSvc := service.NewProgressService(db, bank, logger)
	if _, err := progressSvc.Load(context.Background()); err != nil {
		logger.Error("failed to load progress", "error", err)
		os.Exit(1)
	}

	quiz := service.NewQuizService(bank, progressSvc, cfg.Session(), nil, logger)
	defer quiz.Shutdown()
	handler := api.NewHandler(quiz, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSAllowedOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		quiz.Shutdown()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
