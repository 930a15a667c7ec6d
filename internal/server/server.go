// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taafi-health-tools/internal/config"
	"taafi-health-tools/internal/healthcalc"
	"taafi-health-tools/internal/models"
	"taafi-health-tools/internal/storage"
)

const (
	serviceName = "health-tools"
	Version     = "1.0.0"
)

var errUnknownTool = errors.New("unknown tool")

// UsageStore is the analytics sink. It never sees calculation inputs.
type UsageStore interface {
	RecordUsage(ctx context.Context, usage *models.ToolUsage) error
	UsageStats(ctx context.Context) ([]models.ToolUsageStat, error)
	Close() error
}

type HealthToolsServer struct {
	info       protocol.Implementation
	httpServer *http.Server
	router     *gin.Engine
	storage    UsageStore
	tools      map[string]toolHandler
	config     *config.Config
	logger     *zap.Logger
	now        func() time.Time
}

func NewHealthToolsServer(cfg *config.Config, logger *zap.Logger) (*HealthToolsServer, error) {
	var stor UsageStore
	if cfg.UsageTracking {
		sqlite, err := storage.NewSQLiteStorage(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		stor = sqlite
	}

	return newServer(cfg, stor, logger), nil
}

// newServer wires the router and tool registry. stor may be nil when usage
// tracking is disabled.
func newServer(cfg *config.Config, stor UsageStore, logger *zap.Logger) *HealthToolsServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &HealthToolsServer{
		info:    protocol.Implementation{Name: serviceName, Version: Version},
		storage: stor,
		config:  cfg,
		logger:  logger,
		now:     time.Now,
	}
	s.tools = s.registerTools()
	s.router = s.setupRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *HealthToolsServer) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": s.info.Name,
			"version": s.info.Version,
		})
	})

	r.POST("/mcp", s.handleMCP)

	api := r.Group("/api/v1")
	{
		api.GET("/tools", s.handleListTools)
		api.GET("/tools/:name", s.handleGetTool)
		api.POST("/tools/recommend", s.handleRecommend)
		api.POST("/tools/:name", s.handleCallTool)
		api.POST("/vaccination/export", s.handleVaccinationExport)
		api.GET("/usage", s.handleUsage)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *HealthToolsServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// handleMCP serves a single MCP tools/call request.
func (s *HealthToolsServer) handleMCP(c *gin.Context) {
	var request protocol.CallToolRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	data, err := s.callTool(c.Request.Context(), request.Name, request.Arguments, models.ChannelMCP)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	result, err := s.createJSONResponse(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *HealthToolsServer) handleCallTool(c *gin.Context) {
	// An empty body means a tool called without arguments.
	args := map[string]interface{}{}
	if err := json.NewDecoder(c.Request.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	data, err := s.callTool(c.Request.Context(), c.Param("name"), args, models.ChannelREST)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *HealthToolsServer) handleUsage(c *gin.Context) {
	if s.storage == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "tracking": false, "data": []models.ToolUsageStat{}})
		return
	}

	stats, err := s.storage.UsageStats(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to load usage stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load usage stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tracking": true, "data": stats})
}

// callTool runs a registered calculator and records the call on success.
func (s *HealthToolsServer) callTool(ctx context.Context, name string, args map[string]interface{}, channel models.Channel) (interface{}, error) {
	handler, ok := s.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := handler(args)
	if err != nil {
		s.logger.Info("tool call rejected", zap.String("tool", name), zap.Error(err))
		return nil, err
	}

	s.recordUsage(ctx, name, channel)
	return result, nil
}

func (s *HealthToolsServer) recordUsage(ctx context.Context, tool string, channel models.Channel) {
	if s.storage == nil {
		return
	}
	usage := &models.ToolUsage{
		ID:        uuid.NewString(),
		Tool:      tool,
		Channel:   channel,
		CreatedAt: s.now(),
	}
	if err := s.storage.RecordUsage(ctx, usage); err != nil {
		s.logger.Warn("failed to record tool usage", zap.String("tool", tool), zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, healthcalc.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Handler exposes the router, mainly for tests.
func (s *HealthToolsServer) Handler() http.Handler {
	return s.router
}

func (s *HealthToolsServer) Start(ctx context.Context) error {
	s.logger.Info("starting health tools server",
		zap.String("addr", s.httpServer.Addr),
		zap.Bool("usage_tracking", s.storage != nil),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HealthToolsServer) Stop(ctx context.Context) error {
	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = s.httpServer.Shutdown(ctx)
	}
	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			s.logger.Warn("failed to close storage", zap.Error(err))
		}
	}
	return shutdownErr
}

func (s *HealthToolsServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
