package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	adapthttp "fitstats/internal/adapter/http"
	"fitstats/internal/adapter/memory"
	"fitstats/internal/adapter/postgres"
	"fitstats/internal/app"
	"fitstats/internal/config"
	"fitstats/internal/domain"
	"fitstats/internal/logging"
	"fitstats/internal/metrics"
	"fitstats/internal/stats"
)

// store is what both storage adapters provide.
type store interface {
	domain.WeightRepository
	domain.WorkoutRepository
	domain.WaterRepository
	domain.NutritionRepository
	domain.StepRepository
	domain.ProfileRepository
	domain.UserRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		db       store
		sessions domain.SessionRepository
	)
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		mem := memory.New()
		db, sessions = mem, mem.NewSessionRepo()
	} else {
		pg, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = pg.Close() }()
		db, sessions = pg, postgres.NewSessionRepo(pg)
	}

	cal := stats.NewCalendar(cfg.Location, cfg.WeekStart)
	authSvc := app.NewAuthService(db, sessions)
	statsSvc := app.NewStatisticsService(app.Sources{
		Weights:   db,
		Workouts:  db,
		Water:     db,
		Nutrition: db,
		Steps:     db,
	}, cal)

	opts := []adapthttp.Option{adapthttp.WithDefaultDays(cfg.OverviewDays, cfg.WeightTrendDays)}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.NewManager("fitstats", "server", reg)
		statsSvc.WithMetrics(m)
		opts = append(opts, adapthttp.WithMetrics(m, reg))
	}

	if cfg.OIDCEnabled() {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			log.Fatalf("oidc: %v", err)
		}
		opts = append(opts, adapthttp.WithOIDC(oidcCfg))
		log.WithField("issuer", cfg.OIDCIssuer).Info("sso enabled")
	}

	if cfg.AuthDisabled {
		local, err := authSvc.ValidateForwardAuth(ctx, "local")
		if err != nil {
			log.Fatalf("provision local user: %v", err)
		}
		opts = append(opts, adapthttp.WithoutAuth(local))
		log.Warn("authentication disabled, all requests act as user 'local'")
	}

	srv := adapthttp.New(adapthttp.Services{
		Stats:     statsSvc,
		Weight:    app.NewWeightService(db).WithProfiles(db),
		Water:     app.NewWaterService(db),
		Workouts:  app.NewWorkoutService(db),
		Nutrition: app.NewNutritionService(db),
		Steps:     app.NewStepsService(db, cal),
		Profile:   app.NewProfileService(db),
		Auth:      authSvc,
	}, opts...)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go purgeSessions(ctx, authSvc, time.Hour)

	go func() {
		log.WithFields(log.Fields{"addr": cfg.Addr, "tz": cal.Location().String()}).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}
}

func purgeSessions(ctx context.Context, auth *app.AuthService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := auth.PurgeExpiredSessions(ctx); err != nil {
				log.WithError(err).Warn("purge expired sessions")
			}
		}
	}
}
