package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sdlc-studio-service/internal/adapters/primary/http/handlers"
	"sdlc-studio-service/internal/adapters/primary/http/middleware"
	"sdlc-studio-service/internal/adapters/secondary/github"
	"sdlc-studio-service/internal/adapters/secondary/openai"
	"sdlc-studio-service/internal/adapters/secondary/postgres"
	"sdlc-studio-service/internal/config"
	"sdlc-studio-service/internal/core/crypto"
	"sdlc-studio-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	if err := postgres.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	projectRepo := postgres.NewProjectRepository(pool)
	artifactRepo := postgres.NewArtifactRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	commitRepo := postgres.NewCommitRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	gateRepo := postgres.NewGateReviewRepository(pool)

	// Outbound Clients
	aiClient := openai.NewClient(&cfg.OpenAI)
	githubClient := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Timeout)
	cipher := crypto.NewTokenCipher(cfg.Encryption.Key)

	// Core Services (Application Layer)
	projectSvc := services.NewProjectService(projectRepo, commitRepo, activityRepo)
	artifactSvc := services.NewArtifactService(artifactRepo, projectRepo, aiClient, commitRepo, activityRepo)
	chatSvc := services.NewChatService(chatRepo, projectRepo, aiClient)
	discoverSvc := services.NewDiscoverService(projectRepo, artifactRepo, chatRepo, aiClient, commitRepo, activityRepo)
	defineSvc := services.NewDefineService(projectRepo, artifactRepo, chatRepo, aiClient, commitRepo, activityRepo)
	designSvc := services.NewDesignService(projectRepo, artifactRepo, chatRepo, aiClient, commitRepo, activityRepo)
	developSvc := services.NewDevelopService(projectRepo, artifactRepo, aiClient, githubClient, cipher, commitRepo, activityRepo)
	testSvc := services.NewTestStageService(projectRepo, artifactRepo, aiClient, commitRepo, activityRepo)
	githubSvc := services.NewGitHubService(projectRepo, githubClient, cipher, activityRepo)
	gateSvc := services.NewGateService(projectRepo, gateRepo, activityRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(projectSvc, artifactSvc, chatSvc, discoverSvc, defineSvc, designSvc, developSvc, testSvc, githubSvc, gateSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
