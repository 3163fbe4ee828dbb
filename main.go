package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/config"
	"github.com/axportal/backend/internal/db"
	"github.com/axportal/backend/internal/handler"
	"github.com/axportal/backend/internal/logger"
	"github.com/axportal/backend/internal/service"
	"github.com/axportal/backend/internal/sktai"
)

// @title AXPortal Backend API
// @version 1.0
// @description Portal backend that fronts the SKTAI platform.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Server.DebugMode)
	defer func() {
		_ = log.Sync()
	}()

	gin.SetMode(gin.ReleaseMode)
	if cfg.Server.DebugMode {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to postgres", "error", err)
	}
	defer pg.Close()

	// SKTAI platform wiring: one shared transport, one token manager.
	upstream := sktai.NewHTTPClient(cfg.Sktai, log)
	authClient := sktai.NewAuthClient(cfg.Sktai, upstream, log)
	tokens := sktai.NewTokenManager(sktai.NewMemoryTokenStore(), authClient, pg, cfg.Sktai.AdminUsername, log)
	apiClient := sktai.NewClient(cfg.Sktai, upstream, tokens, log)

	authService, err := service.NewAuthService(pg, tokens, cfg.Auth)
	if err != nil {
		log.Fatal("failed to initialize auth service", "error", err)
	}
	if err := authService.EnsureSchema(ctx); err != nil {
		log.Fatal("failed to ensure database schema", "error", err)
	}
	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatal("failed to ensure admin account", "error", err)
	}

	ssoService, err := service.NewSSOService(ctx, cfg.Auth, authService)
	if err != nil {
		log.Fatal("failed to initialize SSO service", "error", err)
	}
	if ssoService.Enabled() {
		log.Info("SSO login enabled", "issuer", cfg.Auth.OIDCIssuer)
	}

	datasetService := service.NewDatasetService(sktai.NewDatasetClient(apiClient))
	modelService := service.NewModelService(sktai.NewModelClient(apiClient))
	servingService := service.NewServingService(sktai.NewServingClient(apiClient))
	agentService := service.NewAgentService(sktai.NewAgentClient(apiClient))
	mcpService := service.NewMCPService(sktai.NewMCPClient(apiClient))
	safetyService := service.NewSafetyService(sktai.NewSafetyClient(apiClient))
	apiKeyService := service.NewAPIKeyService(sktai.NewAPIKeyClient(apiClient))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestIDMiddleware())
	router.Use(cors.New(corsConfig(cfg.Server)))

	registerRoutes(router, authService,
		handler.NewAuthHandler(authService, ssoService),
		handler.NewDatasetHandler(datasetService),
		handler.NewModelHandler(modelService),
		handler.NewServingHandler(servingService),
		handler.NewAgentHandler(agentService),
		handler.NewMCPHandler(mcpService),
		handler.NewSafetyHandler(safetyService),
		handler.NewAPIKeyHandler(apiKeyService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "debug", cfg.Server.DebugMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "X-Api-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := strings.TrimSpace(cfg.AllowedOrigins)
	if origins == "" || origins == "*" {
		c.AllowOriginFunc = func(string) bool { return true }
		return c
	}
	c.AllowOrigins = strings.Split(origins, ",")
	return c
}

func registerRoutes(
	router *gin.Engine,
	authService *service.AuthService,
	auth *handler.AuthHandler,
	datasets *handler.DatasetHandler,
	models *handler.ModelHandler,
	servings *handler.ServingHandler,
	agents *handler.AgentHandler,
	mcp *handler.MCPHandler,
	safety *handler.SafetyHandler,
	apiKeys *handler.APIKeyHandler,
) {
	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/sso/login", auth.SSOLogin)
		authGroup.POST("/refresh", auth.Refresh)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/config", auth.Config)
	}

	api := router.Group("/api/v1")
	api.Use(handler.AuthMiddleware(authService))
	{
		api.GET("/auth/me", auth.Me)
		api.POST("/auth/project", auth.AssignProject)

		api.GET("/datasets", datasets.List)
		api.POST("/datasets", datasets.Create)
		api.GET("/datasets/:id", datasets.Get)
		api.DELETE("/datasets/:id", datasets.Delete)
		api.POST("/datasets/:id/files", datasets.UploadFile)
		api.GET("/datasets/:id/preview", datasets.Preview)

		api.GET("/models", models.List)
		api.POST("/models", models.Register)
		api.GET("/models/providers", models.Providers)
		api.GET("/models/types", models.Types)
		api.GET("/models/:id", models.Get)
		api.PUT("/models/:id", models.Update)
		api.DELETE("/models/:id", models.Delete)

		api.GET("/servings", servings.List)
		api.POST("/servings", servings.Create)
		api.GET("/servings/models", servings.Models)
		api.GET("/servings/:id", servings.Get)
		api.PUT("/servings/:id", servings.Update)
		api.DELETE("/servings/:id", servings.Delete)
		api.POST("/servings/:id/start", servings.Start)
		api.POST("/servings/:id/stop", servings.Stop)

		api.GET("/agents", agents.List)
		api.POST("/agents", agents.Create)
		api.POST("/agents/invoke", agents.Invoke)
		api.GET("/agents/:id", agents.Get)
		api.PUT("/agents/:id", agents.Update)
		api.DELETE("/agents/:id", agents.Delete)
		api.POST("/agents/:id/deploy", agents.Deploy)
		api.POST("/agents/:id/test", agents.Test)

		api.GET("/mcp/servers", mcp.List)
		api.POST("/mcp/servers", mcp.Register)
		api.GET("/mcp/servers/:id", mcp.Get)
		api.PUT("/mcp/servers/:id", mcp.Update)
		api.DELETE("/mcp/servers/:id", mcp.Delete)
		api.GET("/mcp/servers/:id/tools", mcp.Tools)

		api.GET("/safety/filters", safety.List)
		api.POST("/safety/filters", safety.Create)
		api.GET("/safety/categories", safety.Categories)
		api.GET("/safety/filters/:id", safety.Get)
		api.PUT("/safety/filters/:id", safety.Update)
		api.DELETE("/safety/filters/:id", safety.Delete)

		api.GET("/api-keys", apiKeys.List)
		api.POST("/api-keys", apiKeys.Create)
		api.DELETE("/api-keys/:id", apiKeys.Revoke)
	}
}
