package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceplc/internal/config"
	"voiceplc/internal/handlers"
	"voiceplc/internal/interpreter"
	"voiceplc/internal/logger"
	"voiceplc/internal/registry"
	"voiceplc/internal/server"
	"voiceplc/internal/service"

	_ "voiceplc/docs"
)

// @title        Voice PLC Command Engine API
// @version      1.0
// @description  Text command processing and monitoring for a simulated industrial device fleet.
// @BasePath     /

func main() {
	// load config.yml
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger at the configured level
	log := logger.Get(cfg.LogLevel)

	// load device manifest
	reg, err := registry.LoadRegistry(cfg.DevicesFile)
	if err != nil {
		log.Fatalw("failed to load device manifest", "path", cfg.DevicesFile, "err", err)
	}
	log.Infow("device manifest loaded", "devices", len(reg.Devices()))

	// pick interpreter strategy
	var interp interpreter.Interpreter
	switch cfg.Strategy {
	case config.StrategyLLM:
		interp = interpreter.NewLLM(cfg.LLMEndpoint, reg, cfg.LLMTimeout)
		log.Infow("interpreter ready", "strategy", cfg.Strategy, "endpoint", cfg.LLMEndpoint)
	default:
		interp = interpreter.NewPattern()
		log.Infow("interpreter ready", "strategy", cfg.Strategy)
	}

	mode, err := service.ParseMode(cfg.ResponseMode)
	if err != nil {
		log.Fatalw("invalid response mode", "err", err)
	}

	// wire dependencies
	values := service.NewSimulatedSource(0)
	services := service.NewService(reg, interp, values, cfg.HistoryLimit, log)
	apiHandler := handlers.NewHandler(services, mode, log)

	// context for background goroutines
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
