package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/catalystprep/exam-ingest/internal/config"
	"github.com/catalystprep/exam-ingest/internal/ingest"
	"github.com/catalystprep/exam-ingest/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server hosts the HTTP ingestion API
type Server struct {
	config        *config.Config
	log           *logger.Logger
	ingestService *ingest.Service
	httpServer    *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, log *logger.Logger, ingestService *ingest.Service) (*Server, error) {
	if ingestService == nil {
		return nil, fmt.Errorf("ingestService cannot be nil")
	}

	s := &Server{
		config:        cfg,
		log:           log,
		ingestService: ingestService,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	if !s.config.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.accessLog())

	router.GET("/healthz", s.handleHealthz)

	api := router.Group("/api")
	{
		api.POST("/ingest", s.handleIngest)
	}

	return router
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    s.config.ServerName,
		"version": s.config.Version,
	})
}

// Run serves HTTP until the context is cancelled, then drains connections
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("shutting down http server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
