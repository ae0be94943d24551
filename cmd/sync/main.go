// Command sync runs the ERP synchronization pipeline once and exits.
// Useful for backfilling a specific issue date.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stitchworks/atelier/internal/config"
	"github.com/stitchworks/atelier/internal/database"
	"github.com/stitchworks/atelier/internal/erp"
	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/geocode"
	shipmentStore "github.com/stitchworks/atelier/internal/shipment/store"
	"github.com/stitchworks/atelier/internal/syncer"
	syncerStore "github.com/stitchworks/atelier/internal/syncer/store"
)

func main() {
	dateFlag := flag.String("date", "", "issue date to import (YYYY-MM-DD), defaults to today")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	date := time.Now()

	if *dateFlag != "" {
		date, err = time.Parse(time.DateOnly, *dateFlag)
		if err != nil {
			slog.Error("invalid date", "value", *dateFlag, "error", err)
			os.Exit(1)
		}
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

	svc := syncer.NewService(erpClient, syncerStore.New(db, geocoder), shipmentStore.New(db), publisher)

	imported, err := svc.Run(ctx, date)
	if err != nil {
		slog.Error("sync failed", "error", err)
		os.Exit(1)
	}

	slog.Info("sync finished", "date", date.Format(time.DateOnly), "imported", imported)
}
