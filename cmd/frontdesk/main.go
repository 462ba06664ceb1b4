package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"alcyxob/gym-frontdesk/internal/config"
	"alcyxob/gym-frontdesk/internal/domain"
	"alcyxob/gym-frontdesk/internal/logging"
	"alcyxob/gym-frontdesk/internal/poller"
	"alcyxob/gym-frontdesk/internal/roster"
	"alcyxob/gym-frontdesk/internal/seed"
	"alcyxob/gym-frontdesk/internal/service"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	logger := logging.NewLogger(cfg.Environment)
	defer logger.Sync()
	logger.Info("starting gym front-desk", zap.String("environment", cfg.Environment))

	// --- Seed the in-memory roster ---
	// State lives only in this process and resets on restart; that is the
	// contract, not a limitation.
	now := time.Now()
	store := roster.New(seed.Trainers(), seed.Library(), seed.Students(now))
	logger.Info("roster seeded",
		zap.Int("students", len(store.Students())),
		zap.Int("trainers", len(store.Trainers())),
		zap.Int("libraryExercises", len(store.Library())))

	// --- Initialize Services ---
	sessionService := service.NewSessionService(store, logger, seed.LoggedInTrainerID)
	rosterService := service.NewRosterService(store, logger, seed.LoggedInTrainerID)

	queued := domain.StatusQueued
	logger.Info("front-desk queue",
		zap.Int("waiting", len(rosterService.Students(service.StudentFilter{Status: &queued}))))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Students seeded mid-training need their sessions reconstructed before
	// the rhythm loop first looks at them.
	if err := sessionService.BootstrapSessions(ctx); err != nil {
		logger.Fatal("could not bootstrap sessions", zap.Error(err))
	}

	// --- Polling Coordinator ---
	coordinator := poller.NewCoordinator(sessionService, store, logger,
		cfg.Poller.RhythmTick, cfg.Poller.DisplayTick)
	coordinator.Start(ctx)

	// Wait for interrupt; the coordinator must be stopped before teardown so
	// no timer callback fires against torn-down state.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	coordinator.Stop()
	cancel()

	logger.Info("front-desk exiting")
}
