package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/reachx/reach-site/pkg/config"
	"github.com/reachx/reach-site/pkg/legal"
	"github.com/reachx/reach-site/pkg/refresh"
	"github.com/reachx/reach-site/pkg/site"
	"github.com/reachx/reach-site/pkg/storage"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.ConfigureLogging(); err != nil {
		logrus.Fatalf("Invalid logging configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional. Interfaces stay nil when it is disabled.
	var (
		store      site.Store
		cache      legal.Cache
		redisStore *storage.RedisStore
	)
	if cfg.CacheEnabled() {
		redisStore, err = storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()

		store, cache = redisStore, redisStore
		logrus.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	} else {
		logrus.Info("REDIS_ADDR not set, document cache and click counters disabled")
	}

	fetcher := legal.NewFetcher(legal.FetcherConfig{
		URLs: map[legal.Slug]string{
			legal.Privacy: cfg.PrivacyURL,
			legal.Terms:   cfg.TermsURL,
		},
		Timeout:  cfg.LegalFetchTimeout,
		Cache:    cache,
		CacheTTL: cfg.LegalCacheTTL,
	})

	server := site.NewServer(site.Options{
		ReleaseVersion:  cfg.ReleaseVersion,
		DownloadBaseURL: cfg.DownloadBaseURL,
	}, fetcher, store)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"version": cfg.ReleaseVersion,
		}).Info("Starting Reach site")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// The refresher only pays off when there is a cache to keep warm
	if cache != nil {
		worker := refresh.NewWorker(&refresh.WorkerConfig{
			Interval: cfg.LegalRefreshInterval,
			Timeout:  2 * cfg.LegalFetchTimeout,
		}, fetcher)
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping services...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}

	logrus.Info("Shutdown complete")
}
