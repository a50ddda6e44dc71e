package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"smokyhost/config"
	httpLayer "smokyhost/http"
	"smokyhost/logger"
	"smokyhost/metrics"
	"smokyhost/repository"
	"smokyhost/service"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "smokyhost: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, logCloser, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// A broken market model is a startup error, not a request error.
	if err := service.ValidateAssumptions(cfg.Market); err != nil {
		return fmt.Errorf("config market: %w", err)
	}

	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(reg)

	cache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	var generator service.TextGenerator
	gemini, err := service.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	switch {
	case err == nil:
		generator = gemini
		log.Info().Str("model", cfg.Gemini.Model).Msg("text generation enabled")
	case errors.Is(err, service.ErrGenerationUnavailable):
		log.Warn().Msg("no Gemini API key configured, serving fallback text")
	default:
		log.Warn().Err(err).Msg("text generation disabled")
	}

	ai := service.NewAIService(generator, cache, service.AIOptions{
		CacheTTL: cfg.Cache.TTL,
		Timeout:  cfg.Gemini.Timeout,
	}, log, recorder)

	var mailer service.Mailer
	if cfg.SMTP.Configured() {
		mailer = service.NewSMTPMailer(service.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log)
	}

	portfolio := repository.NewPortfolioMemory(time.Now())
	simulations := repository.NewSimulationRepositoryMemory(cfg.Simulation.HistoryLimit)

	services := httpLayer.Services{
		AI:         ai,
		Dashboard:  service.NewDashboardService(portfolio, ai),
		Guests:     service.NewGuestService(portfolio, ai),
		Pricing:    service.NewPricingService(portfolio, ai),
		Listings:   service.NewListingService(portfolio, ai, log),
		Marketing:  service.NewMarketingService(ai, mailer, log, recorder),
		Operations: service.NewOperationsService(portfolio, ai, log),
		Financials: service.NewFinancialsService(simulations, ai, cfg.Market, log, recorder),
	}

	var scheduler *service.Scheduler
	if cfg.Scheduler.Enabled && ai.Enabled() {
		scheduler, err = service.NewScheduler(cfg.Scheduler.BriefingCron, services.Dashboard, services.Operations, cfg.Scheduler.Timeout, log)
		if err != nil {
			return err
		}
		scheduler.Start()
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(services, httpLayer.RouterOptions{
		Logger:        log,
		Registry:      reg,
		RateLimiter:   rateLimiter,
		SlowThreshold: cfg.Server.SlowRequest,
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Environment).Msg("api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
	return nil
}

// newCache picks the generation cache backend. A nil cache disables caching.
func newCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func(), error) {
	noop := func() {}

	if !cfg.Cache.Enabled {
		return nil, noop, nil
	}

	if cfg.Cache.Backend == "redis" {
		redisCache, err := repository.NewRedisCache(ctx, repository.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("addr", cfg.Cache.Redis.Addr).Msg("using redis generation cache")
		return redisCache, func() { _ = redisCache.Close() }, nil
	}

	return repository.NewMemoryCache(), noop, nil
}
