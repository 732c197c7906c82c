package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traffic-lab/api"
	"traffic-lab/auth"
	"traffic-lab/errors"
	"traffic-lab/moderation"
	"traffic-lab/observability"
	"traffic-lab/repositories"
	"traffic-lab/router"
	"traffic-lab/runtime"
	"traffic-lab/runtime/workers"
	"traffic-lab/services"
	"traffic-lab/transport"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle,
// so deferred cleanups always execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	charReplacement, err := config.CharacterRune()
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	users := repositories.NewUserRepository(db, log)
	posts := repositories.NewPostRepository(db, log)
	views := repositories.NewViewRepository(db, log)
	clicks := repositories.NewClickRepository(db, log)
	messages := repositories.NewMessageRepository(db, log)
	settings := repositories.NewSettingRepository(db, log)

	// 3. Realtime core
	configProvider := runtime.NewConfigProvider(log, settings)
	registry := runtime.NewRegistry(log, configProvider.WaveCount)
	distributor := runtime.NewDistributor(log, registry, configProvider, runtime.NewTimerScheduler())
	if _, err = distributor.ReloadConfig(); err != nil {
		log.Warn("Falling back to default distribution config", "error", err)
	}
	hub := transport.NewHub(log)
	monitoring := observability.NewMonitoringManager(log)

	censored, err := moderation.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading censored words failed: %w", err)
	}
	log.Info("Censored words loaded", "words", len(censored.Words), "languages", censored.Languages)
	moderator, err := moderation.NewModerator(censored.Words, charReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator init failed: %w", err)
	}

	// 4. Services
	quota := services.NewQuotaGovernor(log, users, runtime.NewKeyLock())
	userService := services.NewUserService(log, users)
	postService := services.NewPostService(log, users, posts, views, distributor, hub)
	viewTracker := services.NewViewTracker(log, posts, views, hub)
	clickTracker := services.NewClickTracker(log, clicks, hub)
	reupService := services.NewReupService(log, users, posts, quota, distributor, registry, hub)
	settingsService := services.NewSettingsService(log, users, settings, distributor, registry, hub)
	chatService := services.NewChatService(log, users, messages, moderator, hub)

	eventRouter := router.NewRouter(log, registry, viewTracker, reupService, chatService, hub)
	wsHandler := transport.NewWSHandler(log, hub, eventRouter, transport.ConnectionConfig{
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		SendBuffer:   config.SendBuffer,
	}, config.OriginPatterns())

	handlers := api.NewHandlers(log, userService, postService, viewTracker, clickTracker,
		reupService, settingsService, monitoring)
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewHeartbeatWorker(log, registry, monitoring, config.HeartbeatInterval),
		workers.NewReporterWorker(log, registry, monitoring, config.ReportInterval),
		workers.NewConfigReloadWorker(log, distributor, config.ConfigReloadInterval),
	)
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	// 7. HTTP Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           api.NewRouter(handlers, tokens, wsHandler),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		stop()
		<-supDone
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	wsHandler.Shutdown(fmt.Errorf("%w: server shutting down", errors.ErrConnectionClosed))
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
