package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/infrastructure/server"
	"github.com/kanbanboard/core/internal/infrastructure/storage"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Kanban Board API server",
		Long:  "Start the Kanban Board API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the tasks storage layout",
		Long:  "Create the tasks directory with one subdirectory per status column",
		Run: func(cmd *cobra.Command, args []string) {
			runInit()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Kanban Board version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Kanban Board Core v0.1.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	workspace, err := storage.Open(cfg.Storage)
	if err != nil {
		appLogger.Fatalw("failed to open tasks storage", "error", err)
	}

	srv, err := server.New(cfg, workspace, appLogger)
	if err != nil {
		appLogger.Fatalw("failed to initialize server", "error", err)
	}

	appLogger.Infow("starting kanban board api",
		"address", cfg.Server.GetAddr(),
		"environment", cfg.App.Environment,
		"tasks_dir", workspace.Root(),
	)

	go func() {
		if err := srv.Start(cfg.Server.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed to start", "error", err)
		}
	}()

	// Block until a shutdown signal arrives
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("graceful shutdown failed", "error", err)
	}
}

func runInit() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	workspace, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize tasks storage: %v", err)
	}

	fmt.Printf("Tasks storage initialized at %s\n", workspace.Root())
	for _, status := range entities.AllTaskStatuses {
		fmt.Printf("  %s\n", workspace.StatusDir(status))
	}
}
