package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/itchan-dev/threadboard/internal/router"
	"github.com/itchan-dev/threadboard/internal/setup"
	"github.com/itchan-dev/threadboard/shared/config"
	"github.com/itchan-dev/threadboard/shared/logger"
)

func main() {
	var configFolder, envFile string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&envFile, "env_file", ".env", "optional dotenv file with overrides")
	flag.Parse()

	if err := config.LoadDotEnv(envFile); err != nil {
		logger.Log.Error("loading env file", "error", err)
		os.Exit(1)
	}
	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("setting up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	server := &http.Server{
		Addr:         ":" + cfg.Public.Server.Port,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.Server.ReadTimeout,
		WriteTimeout: cfg.Public.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
