package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"battery_alert/internal/config"
	"battery_alert/internal/handlers"
	"battery_alert/internal/logger"
	"battery_alert/internal/repository"
	"battery_alert/internal/repository/db"
	"battery_alert/internal/server"
	"battery_alert/internal/service"
	"battery_alert/internal/sink"

	"github.com/google/uuid"
)

const shutdownTimeout = 10 * time.Second

// @title        Battery Alert API
// @version      1.0
// @description  Classifies battery temperatures against cooling-strategy limits and dispatches alerts.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	sinks := sink.Sinks{
		Controller: sink.NewControllerWriter(os.Stdout, cfg.Controller.Header),
		Email:      sink.NewEmailWriter(os.Stdout, cfg.Email.Recipient),
	}
	services := service.NewService(repos, sinks, authOptions(cfg, log), log)
	apiHandler := handlers.NewHandler(services, log, handlers.WithStreamInterval(cfg.WS.DefaultInterval))

	srv := server.New(cfg.Port, apiHandler.InitRoutes(), server.Timeouts{})
	runHTTPServer(srv, log)

	waitForShutdown(srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	path := cfg.DB.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		path = "app.db"
	}
	return db.InitDB(path)
}

// authOptions falls back to a per-process random key so tokens never verify across restarts.
func authOptions(cfg config.Config, log *logger.Logger) service.AuthOptions {
	key := cfg.Auth.SigningKey
	if key == "" {
		log.Warnw("auth.signing_key not set; using an ephemeral key")
		key = uuid.NewString()
	}
	return service.AuthOptions{SigningKey: key, TokenTTL: cfg.Auth.TokenTTL, OperatorSignup: cfg.Auth.OperatorSignup}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
