package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stitchworks/atelier/internal/config"
	"github.com/stitchworks/atelier/internal/database"
	"github.com/stitchworks/atelier/internal/erp"
	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/geocode"
	atelierHttp "github.com/stitchworks/atelier/internal/http"
	"github.com/stitchworks/atelier/internal/http/auth"
	driverHandler "github.com/stitchworks/atelier/internal/http/driver"
	importsHandler "github.com/stitchworks/atelier/internal/http/imports"
	productionsHandler "github.com/stitchworks/atelier/internal/http/productions"
	seamstressesHandler "github.com/stitchworks/atelier/internal/http/seamstresses"
	shipmentsHandler "github.com/stitchworks/atelier/internal/http/shipments"
	"github.com/stitchworks/atelier/internal/production"
	productionStore "github.com/stitchworks/atelier/internal/production/store"
	"github.com/stitchworks/atelier/internal/route"
	routeStore "github.com/stitchworks/atelier/internal/route/store"
	"github.com/stitchworks/atelier/internal/scheduler"
	"github.com/stitchworks/atelier/internal/seamstress"
	seamstressStore "github.com/stitchworks/atelier/internal/seamstress/store"
	"github.com/stitchworks/atelier/internal/shipment"
	shipmentStore "github.com/stitchworks/atelier/internal/shipment/store"
	"github.com/stitchworks/atelier/internal/syncer"
	syncerStore "github.com/stitchworks/atelier/internal/syncer/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var publisher events.Publisher = events.Nop{}
	if cfg.Kafka.Brokers != "" {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer publisher.Close()

	var (
		geocoder  = geocode.NewClient(cfg.Geocoding.APIKey)
		erpClient = erp.NewHTTPClient(cfg.ERP.BaseURL, cfg.ERP.Pin, cfg.ERP.Timeout)
	)

	shipmentRepo := shipmentStore.New(db)

	var (
		shipmentService   = shipment.NewService(shipmentRepo, publisher)
		seamstressService = seamstress.NewService(seamstressStore.New(db), geocoder)
		productionService = production.NewService(productionStore.New(db))
		routeService      = route.NewService(routeStore.New(db), shipmentRepo, publisher)
		syncService       = syncer.NewService(erpClient, syncerStore.New(db, geocoder), shipmentRepo, publisher)
	)

	var (
		authMW       = auth.NewMiddleware(cfg.Auth.JWTSecret)
		shipmentsH   = shipmentsHandler.NewHandler(shipmentService)
		seamstressH  = seamstressesHandler.NewHandler(seamstressService)
		productionsH = productionsHandler.NewHandler(productionService)
		importsH     = importsHandler.NewHandler(syncService)
		driverH      = driverHandler.NewHandler(routeService)
	)

	router := atelierHttp.New(authMW, shipmentsH, seamstressH, productionsH, importsH, driverH)

	sched := scheduler.New(syncService, cfg.Sync.CheckInterval, cfg.Sync.StaleAfter)
	if err := sched.Start(ctx); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
