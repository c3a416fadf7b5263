package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fieldcms/backend/internal/config"
	"fieldcms/backend/internal/httpserver"
	"fieldcms/backend/internal/infrastructure/postgres"
	"fieldcms/backend/internal/infrastructure/storage"
	"fieldcms/backend/internal/infrastructure/token"
	agentusecase "fieldcms/backend/internal/usecase/agent"
	authusecase "fieldcms/backend/internal/usecase/auth"
	contentusecase "fieldcms/backend/internal/usecase/content"
	imageusecase "fieldcms/backend/internal/usecase/image"
	pageusecase "fieldcms/backend/internal/usecase/page"
	searchusecase "fieldcms/backend/internal/usecase/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	agentRepo := postgres.NewAgentRepository(db.Pool)
	pageRepo := postgres.NewPageRepository(db.Pool)
	contentRepo := postgres.NewContentRepository(db.Pool)

	server := httpserver.NewServer(cfg, httpserver.Services{
		Auth:     authusecase.NewService(agentRepo, tokenManager),
		Agents:   agentusecase.NewService(agentRepo),
		Pages:    pageusecase.NewService(pageRepo),
		Contents: contentusecase.NewService(contentRepo, fileStore),
		Images:   imageusecase.NewService(fileStore),
		Search:   searchusecase.NewService(agentRepo, pageRepo, contentRepo),
		Tokens:   tokenManager,
	})
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
		log.Printf("HTTP server stopped accepting new connections")
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v\n", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
