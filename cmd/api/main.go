package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/tinyrecords/tinyrecords-go/internal/config"
	"github.com/tinyrecords/tinyrecords-go/internal/handler"
	"github.com/tinyrecords/tinyrecords-go/internal/middleware"
	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/repository"
	"github.com/tinyrecords/tinyrecords-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	userRepo := repository.NewUserRepository([]model.User{
		{Email: cfg.DemoEmail, Password: cfg.DemoPassword},
	})
	sessionRepo := repository.NewSessionRepository()
	recordRepo := repository.NewRecordRepository()

	authService := service.NewAuthService(userRepo, sessionRepo)
	authHandler := handler.NewAuthHandler(authService, handler.CookieConfig{
		Name:   cfg.SessionCookie,
		Secure: cfg.CookieSecure,
	})

	recordService := service.NewRecordService(recordRepo)
	recordHandler := handler.NewRecordHandler(recordService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(authService, cfg.SessionCookie))
		r.Get("/api/records", recordHandler.HandleListRecords)
		r.Post("/api/records", recordHandler.HandleCreateRecord)
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", handler.SPA(cfg.StaticDir))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
