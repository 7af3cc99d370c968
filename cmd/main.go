// nutricalculator — OpenFoodFacts aggregation service.
//
// Fetches paginated product data from OpenFoodFacts, normalises it into a
// fixed nutrient schema, applies optional filters and translation, and caches
// the processed result in Redis. Exposes:
//   - GET /api/v1/products — the fetch → normalize → filter → translate →
//     cache pipeline
//   - GET /api/v1/news     — headlines pass-through
//   - GET /healthz
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/cache"
	"github.com/maicaalmonte/nutricalculator/internal/config"
	"github.com/maicaalmonte/nutricalculator/internal/db"
	"github.com/maicaalmonte/nutricalculator/internal/fetcher"
	"github.com/maicaalmonte/nutricalculator/internal/logger"
	"github.com/maicaalmonte/nutricalculator/internal/news"
	"github.com/maicaalmonte/nutricalculator/internal/pipeline"
	"github.com/maicaalmonte/nutricalculator/internal/scheduler"
	"github.com/maicaalmonte/nutricalculator/internal/server"
	"github.com/maicaalmonte/nutricalculator/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[nutricalculator] Config error: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("[nutricalculator] Logger error: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Redis ────────────────────────────────────────────────────────────────
	zlog.Info("connecting to Redis")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}
	store := db.NewRedisStore(rdb)
	defer store.Close()

	// ── Shared clients ───────────────────────────────────────────────────────
	var fetchOpts []fetcher.Option
	if cfg.ProductAPIBaseURL != "" {
		fetchOpts = append(fetchOpts, fetcher.WithBaseURL(cfg.ProductAPIBaseURL))
	}
	fetchOpts = append(fetchOpts, fetcher.WithPageDelay(cfg.PageDelay))
	products := fetcher.New(zlog, fetchOpts...)

	var translator translate.Translator
	if cfg.TranslateURL != "" {
		translator = translate.NewClient(cfg.TranslateURL, cfg.TranslateAPIKey)
	} else {
		zlog.Info("TRANSLATE_URL not set, translation disabled")
	}

	var headlines *news.Client
	if cfg.NewsAPIURL != "" {
		headlines = news.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey)
	}

	pipe := pipeline.New(products, translator, cache.New(store, cfg.CacheTTL, zlog), zlog)

	// ── Cache warmer ─────────────────────────────────────────────────────────
	if cfg.WarmIntervalHours > 0 {
		warmer := scheduler.New(pipe, cfg.WarmIntervalHours, zlog)
		if err := warmer.Start(ctx); err != nil {
			zlog.Fatal("warmer start failed", zap.Error(err))
		}
		defer warmer.Stop()
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: server.New(pipe, headlines, zlog).Router(),
		// No write timeout: a cold query runs up to max_pages sequential
		// upstream requests plus inter-page delays.
		ReadTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("http server error", zap.Error(err))
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("shutdown error", zap.Error(err))
	}
	zlog.Info("stopped")
}
