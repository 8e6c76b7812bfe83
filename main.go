package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "payoff-engine/http"
	"payoff-engine/repository"
	"payoff-engine/service"
)

func main() {
	cfg := loadConfig()

	history := repository.NewHistoryRepositoryMemory(cfg.HistoryCapacity)

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err := redisCache.Ping(); err != nil {
			log.Printf("Warning: redis at %s unavailable, using in-memory cache: %v", cfg.RedisAddr, err)
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	loanService := service.NewLoanService(cache, history)
	termRecommendationService := service.NewTermRecommendationService(loanService)
	debtPayoffService := service.NewDebtPayoffService(cache, history)

	var rateLimiter *httpLayer.RateLimiter
	if cfg.RateLimit > 0 {
		rateLimiter = httpLayer.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer rateLimiter.Stop()
	}

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:    httpLayer.NewLoanHandler(loanService),
		Term:    httpLayer.NewTermRecommendationHandler(termRecommendationService),
		Debts:   httpLayer.NewDebtPayoffHandler(debtPayoffService),
		History: httpLayer.NewHistoryHandler(loanService),
	}, rateLimiter, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en %s", cfg.Addr)
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
