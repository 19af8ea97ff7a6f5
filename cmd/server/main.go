package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/api/handler"
	"github.com/SHIVENDRA3030/time-table/backend/internal/api/router"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
	"github.com/SHIVENDRA3030/time-table/backend/internal/service"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/database"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/jwt"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("unwrap database handle", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, cfg, log)
	h := handler.NewHandler(svc, log)
	jwtManager := jwt.NewManager(&cfg.Auth)

	engine := router.New(cfg, h, jwtManager, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
