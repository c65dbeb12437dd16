package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/events"
	"github.com/kahvecikaan/zebra-store/internal/repository"
	"github.com/kahvecikaan/zebra-store/internal/service"
	httpTransport "github.com/kahvecikaan/zebra-store/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/zebra-store/internal/transport/websocket"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	loadMoreSize = env.Int("LOAD_MORE_SIZE", false,
		12, "Number of products generated by a load more request without a count")
	loadMoreMax = env.Int("LOAD_MORE_MAX", false,
		100, "Largest batch a single load more request may generate")
	corsOrigins = env.String("CORS_ORIGINS", false,
		"http://localhost:3000", "Comma separated list of origins allowed by CORS")
	sessionTTL = env.Duration("SESSION_TTL", false,
		30*time.Minute, "Idle time after which a session is discarded, 0 keeps sessions forever")
)

func main() {
	if err := env.Parse(); err != nil {
		hclog.Default().Error("Unable to parse environment", "error", err)
		os.Exit(1)
	}

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "zebra-store",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// The event bus is shared between the services and the websocket handler
	eventBus := events.NewEventBus[any]()

	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	sessionRepo := repository.NewMemorySessionRepository(*sessionTTL)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if *sessionTTL > 0 {
		go sweepSessions(sweepCtx, sessionRepo, *sessionTTL, logger.Named("session-sweeper"))
	}

	cs := service.NewCatalogService(
		productRepo,
		domain.NewValidation(),
		eventBus,
		logger.Named("catalog-service"),
		*loadMoreMax,
	)
	ss := service.NewSessionService(
		sessionRepo,
		productRepo,
		eventBus,
		logger.Named("session-service"),
	)

	ph := httpTransport.NewProductHandler(cs, logger.Named("product-handler"), *loadMoreSize)
	sh := httpTransport.NewSessionHandler(ss, logger.Named("session-handler"))
	wh := websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus)

	corsConfig := httpTransport.DefaultCORSConfig()
	corsConfig.AllowedOrigins = splitList(*corsOrigins)

	router := httpTransport.NewRouter(ph, sh, logger.Named("http"), wh, corsConfig)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	stopSweep()

	// Closing the bus ends the websocket streams, which Shutdown does not wait for
	eventBus.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
	}
	logger.Info("Shutdown complete")
}

// sweepSessions drops expired sessions every ttl until ctx is done
func sweepSessions(ctx context.Context, repo repository.SessionRepository, ttl time.Duration, logger hclog.Logger) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := repo.Sweep(ctx); n > 0 {
				logger.Debug("Expired sessions removed", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
