package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-budget/config"
	httpLayer "rental-budget/http"
	"rental-budget/repository"
	"rental-budget/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	budgetRepo := repository.NewBudgetRepositoryMemory()

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if redisCache := connectRedis(cfg); redisCache != nil {
		defer redisCache.Close()
		cache = redisCache
	}

	budgetService, err := service.NewBudgetService(budgetRepo, cache, cfg.ContractTerms)
	if err != nil {
		log.Fatalf("invalid contract terms: %v", err)
	}
	budgetHandler := httpLayer.NewBudgetHandler(budgetService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(budgetHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// connectRedis returns nil when Redis is not configured or not reachable;
// the caller then keeps the in-memory pricing cache.
func connectRedis(cfg *config.Config) *repository.RedisCache {
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR not set, using in-memory pricing cache")
		return nil
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		slog.Error("could not connect to Redis, using in-memory pricing cache", "addr", cfg.RedisAddr, "error", err)
		redisCache.Close()
		return nil
	}

	slog.Info("connected to Redis", "addr", cfg.RedisAddr)
	return redisCache
}
