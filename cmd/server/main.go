package main

import (
	"ParaVault/internal/config"
	"ParaVault/internal/handlers"
	"ParaVault/internal/logger"
	"ParaVault/internal/middleware"
	"ParaVault/internal/repo"
	"ParaVault/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.NewConfig()

	zl, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Dev: cfg.Dev})
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := zl.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = zl.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql.DB", "error", err)
	}
	defer sqlDB.Close()

	refreshStore := repo.NewRefreshRepository(gormDB)
	if cfg.RedisURL != "" {
		rdb, err := repo.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "error", err)
		}
		defer rdb.Close()
		refreshStore = repo.NewRedisRefreshStore(rdb)
		sugar.Infow("refresh sessions stored in redis")
	}

	userRepo := repo.NewUserRepository(gormDB)
	containerRepo := repo.NewContainerRepository(gormDB)
	noteRepo := repo.NewNoteRepository(gormDB)

	tokens := service.NewTokenService(refreshStore, cfg.AuthSecret, cfg.AccessTTL, cfg.RefreshTTL, sugar)
	notes := service.NewNoteService(noteRepo, sugar)

	h := handlers.NewHandler(handlers.Services{
		Users:      service.NewUserService(userRepo, sugar),
		Tokens:     tokens,
		Containers: service.NewContainerService(containerRepo, sugar),
		Notes:      notes,
		Links:      service.NewLinkService(notes, noteRepo, containerRepo, sugar),
	}, sugar, cfg)

	housekeeper := service.NewHousekeeper(tokens, sugar)
	if err := housekeeper.Start(service.DefaultPurgeSchedule); err != nil {
		sugar.Fatalw("failed to start housekeeper", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"https", cfg.EnableHTTPS,
		"dialect", gormDB.Dialector.Name(),
		"access_ttl", cfg.AccessTTL,
		"refresh_ttl", cfg.RefreshTTL,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnw("http server shutdown failed", "error", err)
	}
	housekeeper.Stop(doneCtx)
	sugar.Infow("goodbye", "version", version)
}

var version = "dev"
