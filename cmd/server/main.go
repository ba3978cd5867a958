package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "docanalyzer/docs"
	"docanalyzer/internal/analyzer"
	"docanalyzer/internal/analyzer/stub"
	"docanalyzer/internal/config"
	"docanalyzer/internal/handler"
	"docanalyzer/internal/logging"
	"docanalyzer/internal/repository/memory"
	"docanalyzer/internal/router"
	"docanalyzer/internal/service"
)

const (
	appName         = "docanalyzer"
	appVersion      = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

// @title Document Analyzer API
// @version 1.0
// @description Upload a document, run an analysis and export the result.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(os.Stdout, cfg.Log)
	slog.Info("config loaded", "env", cfg.Server.Environment, "analysis_provider", cfg.Analysis.Provider)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize analyzer
	analyzer.RegisterProvider(stub.ProviderName, stub.Factory)
	docAnalyzer, err := analyzer.NewAnalyzer(&cfg.Analysis)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	slog.Info("analyzer initialized", "provider", docAnalyzer.Name())

	// Initialize repositories
	workspaceRepo := memory.NewWorkspaceRepo()

	// Initialize services
	sessionSvc := service.NewSessionService(workspaceRepo, cfg.Session)
	workspaceSvc := service.NewWorkspaceService(workspaceRepo, docAnalyzer, service.WorkspaceOptions{
		MaxUploadBytes:  cfg.Upload.MaxBytes(),
		AnalysisTimeout: time.Duration(cfg.Analysis.TimeoutSecs) * time.Second,
		Location:        cfg.Analysis.Location(),
	})
	exportSvc := service.NewExportService(workspaceRepo)

	// Start the idle workspace sweeper
	sweeper := service.NewWorkspaceSweeper(workspaceRepo, cfg.Session.TTL, cfg.Session.SweepInterval)
	go sweeper.Start(ctx)

	// Initialize handlers
	healthH := handler.NewHealthHandler()
	handlers := router.Handlers{
		Info:      handler.NewInfoHandler(appName, appVersion),
		Health:    healthH,
		Session:   handler.NewSessionHandler(sessionSvc),
		Workspace: handler.NewWorkspaceHandler(workspaceSvc),
		History:   handler.NewHistoryHandler(workspaceSvc),
		Export:    handler.NewExportHandler(exportSvc),
	}

	r := router.Setup(sessionSvc, handlers, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections")
	}

	healthH.SetDraining()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
