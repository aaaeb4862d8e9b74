package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Abhiraj235/GearGo/internal/config"
	"github.com/Abhiraj235/GearGo/internal/handler"
	"github.com/Abhiraj235/GearGo/internal/logger"
	"github.com/Abhiraj235/GearGo/internal/middleware"
	"github.com/Abhiraj235/GearGo/internal/revalidate"
	"github.com/Abhiraj235/GearGo/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("db", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		zl.Fatal("db ping", zap.Error(err))
	}
	zl.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		zl.Warn("migration file not found, skipping", zap.Error(err))
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		zl.Warn("migration warning", zap.Error(err))
	} else {
		zl.Info("migration applied")
	}

	// cache revalidation fanout; the API runs fine without it
	var reval revalidate.Revalidator = revalidate.Noop{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zl.Warn("redis unreachable, revalidation disabled", zap.Error(err))
		} else {
			reval = revalidate.NewRedis(rdb, cfg.RedisChannel)
			zl.Info("revalidation via redis", zap.String("addr", cfg.RedisAddr))
		}
	}

	st := store.New(pool)
	h := handler.New(st, cfg, zl, reval)
	rl := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: h.Routes(rl, zl),
	}
	go func() {
		zl.Info("http listening", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
