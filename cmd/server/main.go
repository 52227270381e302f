package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/config"
	"github.com/jsultonov/agrodale/internal/observability"
	"github.com/jsultonov/agrodale/internal/repository/croptable"
	"github.com/jsultonov/agrodale/internal/repository/memory"
	"github.com/jsultonov/agrodale/internal/scheduler"
	"github.com/jsultonov/agrodale/internal/server/handlers"
	"github.com/jsultonov/agrodale/internal/server/router"
	"github.com/jsultonov/agrodale/internal/service/advisor"
	"github.com/jsultonov/agrodale/internal/service/simulation"
	weatherclient "github.com/jsultonov/agrodale/pkg/clients/weather"
	"github.com/jsultonov/agrodale/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	table := croptable.New(cfg.CropTable.CSVPath, baseLogger.Named("repo.croptable"))
	fieldRepo := memory.NewFieldRepository()

	weatherClient := weatherclient.NewClient(cfg.Weather, metrics, baseLogger.Named("client.weather"))
	advisorSvc := advisor.NewService(table, fieldRepo, clock, metrics, baseLogger.Named("svc.advisor"))
	simulator := simulation.NewSimulator(fieldRepo, table, clock, metrics, baseLogger.Named("svc.simulation"))

	fieldHandler := handlers.NewFieldHandler(advisorSvc, fieldRepo, metrics, baseLogger.Named("handlers.fields"))
	advisoryHandler := handlers.NewAdvisoryHandler(advisorSvc, table, weatherClient, baseLogger.Named("handlers.advisory"))
	engine := router.New(fieldHandler, advisoryHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Simulation, simulator, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
