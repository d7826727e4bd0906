package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/catalystprep/exam-ingest/internal/config"
	"github.com/catalystprep/exam-ingest/internal/ingest"
	"github.com/catalystprep/exam-ingest/internal/logger"
	"github.com/catalystprep/exam-ingest/internal/mcp"
	"github.com/catalystprep/exam-ingest/internal/server"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// runServerMode handles HTTP server mode execution with signal handling
func runServerMode(ctx context.Context, cancel context.CancelFunc, log *logger.Logger, srv *server.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.Run(ctx)
	}()

	select {
	case sig := <-signalCh:
		log.Info("received signal, initiating graceful shutdown", "signal", sig.String())
		cancel()

		if err := <-serverErrCh; err != nil {
			log.Error("server shutdown with error", "error", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	log.Info("server stopped successfully")
}

// runStdioMode handles MCP stdio mode execution
func runStdioMode(ctx context.Context, srv *mcp.Server) {
	// In stdio mode the parent process controls our lifecycle; log only to
	// stderr so stdout stays clean for the MCP protocol
	log.SetOutput(os.Stderr)

	if err := srv.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	ingestService := ingest.NewService(cfg.MaxFileSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.IsServerMode() {
		zapLog, err := logger.New(cfg.LogLevel)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer zapLog.Sync()

		if cfg.IsDebug() {
			zapLog.Debug("starting with configuration", "config", cfg.String())
		}

		srv, err := server.NewServer(cfg, zapLog, ingestService)
		if err != nil {
			log.Fatalf("Failed to create HTTP server: %v", err)
		}
		runServerMode(ctx, cancel, zapLog, srv)
	} else {
		srv, err := mcp.NewServer(cfg, ingestService)
		if err != nil {
			log.Fatalf("Failed to create MCP server: %v", err)
		}
		runStdioMode(ctx, srv)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Exam Ingest\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
