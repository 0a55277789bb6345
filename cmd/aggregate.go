package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/restunugroho/demand-forecast/internal/aggregator"
	"github.com/restunugroho/demand-forecast/internal/output"
	"github.com/restunugroho/demand-forecast/internal/storage"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregates the event log into hourly demand per location",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		store, err := storage.NewStore(cfg)
		if err != nil {
			log.Fatalf("Failed to create store: %v", err)
		}

		events, err := store.ReadOrderEvents(cfg.EventsFileName())
		if err != nil {
			log.Fatalf("Failed to read event table: %v", err)
		}

		records := aggregator.Aggregate(events)
		if err := store.WriteDemand(cfg.DemandFileName(), records); err != nil {
			log.Fatalf("Failed to write demand table: %v", err)
		}
		log.Printf("Aggregated %d events into %d (location, hour) records", len(events), len(records))

		if cfg.Database.Enabled {
			ctx := context.Background()
			sink, err := output.NewPostgresSink(ctx, cfg.Database.URL)
			if err != nil {
				log.Fatalf("Failed to connect to Postgres: %v", err)
			}
			defer sink.Close()
			if err := sink.CreateTables(ctx); err != nil {
				log.Fatalf("Failed to create tables: %v", err)
			}
			if err := sink.BulkInsertDemand(ctx, records); err != nil {
				log.Fatalf("Failed to insert demand: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}
