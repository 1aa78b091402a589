package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"netbl/internal/api"
	"netbl/internal/config"
	"netbl/internal/repository/postgres"
	redisrepo "netbl/internal/repository/redis"
	"netbl/internal/sampler"
	"netbl/internal/service"
	"netbl/internal/tracker"
)

type Application struct {
	reports *service.ReportService
	rollups *service.RollupService

	pg  *config.Postgres
	red *config.Redis

	sampler *sampler.Sampler
	tracker *tracker.Tracker

	httpServer *http.Server
}

func NewApplication(cfg *config.Config) *Application {
	app := &Application{}

	app.pg = config.NewPostgres(cfg.PostgresURL())
	log.Println("Connected to PostgreSQL")

	pgRepo := postgres.NewPostgresRepository(app.pg.Pool)

	var cache redisrepo.RedisRepo
	red, err := config.InitRedis(cfg.RedisAddr)
	if err != nil {
		log.Printf("WARNING: report cache unavailable, continuing without it: %v", err)
	} else {
		log.Println("Connected to Redis")
		app.red = red
		cache = redisrepo.NewRedisRepository(red.Client)
	}

	app.sampler = sampler.New(cfg.SampleInterval, cfg.RecordInterval, pgRepo)
	app.tracker = tracker.New(pgRepo, nil, cfg.TrackInterval)

	app.reports = service.NewReportService(pgRepo, cache, app.sampler, nil)
	app.rollups = service.NewRollupService(pgRepo)

	mux := api.SetupRouter(api.NewAPIHandler(app.reports, app.rollups))

	app.httpServer = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
	return app
}

func (a *Application) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.sampler.Run(ctx)
	go a.tracker.Run(ctx)

	go func() {
		log.Printf("REST API running on %s", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down...")
	cancel()

	if err := a.httpServer.Shutdown(context.Background()); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	if a.pg != nil {
		a.pg.Close()
		log.Println("PostgreSQL connection closed")
	}
	if a.red != nil {
		a.red.Close()
		log.Println("Redis connection closed")
	}

	log.Println("Application stopped")
}
