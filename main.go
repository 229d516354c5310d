package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qrave1/task-list/bot"
	"github.com/qrave1/task-list/config"
	"github.com/qrave1/task-list/database"
	"github.com/qrave1/task-list/repository"
	"github.com/qrave1/task-list/usecase"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		slog.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	taskRepo, err := repository.NewTaskRepositoryImpl(db)
	if err != nil {
		slog.Error("failed to create task repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	b, err := bot.NewBotik(
		cfg,
		usecase.NewCreateTask(taskRepo),
		usecase.NewDeleteTask(taskRepo),
		usecase.NewListTasks(taskRepo),
	)
	if err != nil {
		slog.Error("failed to create bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := b.Start(); err != nil {
		slog.Error("failed to start bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go b.HandleUpdates(ctx)

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Stop(shutdownCtx); err != nil {
		slog.Error("failed to stop bot", slog.String("error", err.Error()))
	}
}
