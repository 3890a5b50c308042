package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"convsvc/internal/api"
	"convsvc/internal/api/middleware"
	"convsvc/internal/metrics"
	"convsvc/internal/service"
)

func (app *App) initHTTP(svc service.ConversionServiceInterface, met *metrics.ConversionMetrics) {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger, met))
	r.Use(chimiddleware.Recoverer)

	r.Get("/convert", api.HandleConvert(svc))
	r.Get("/currencies", api.HandleListCurrencies(svc))
	r.Post("/currencies", api.HandleRegisterCurrency(svc))
	r.Put("/rates/custom", api.HandleSetCustomRate(svc))
	r.Get("/conversions/recent", api.HandleRecentConversions(svc))
	r.Get("/conversions/latest", api.HandleLatestConversion(svc))

	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.db, app.rdbCache, app.rdbAsynq))
	r.Handle("/metrics", promhttp.Handler())

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/swagger", api.OpenAPISpecHandler())
		app.logger.Infow("Swagger UI enabled", "path", "/swagger/index.html")
	}

	if app.cfg.Server.ServeAsynqmon {
		mon := asynqmon.New(asynqmon.Options{
			RootPath:     "/monitoring/tasks",
			RedisConnOpt: asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr},
		})
		r.Mount(mon.RootPath(), mon)
		app.logger.Infow("Asynqmon enabled", "path", mon.RootPath())
	}

	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler: r,
	}
}
