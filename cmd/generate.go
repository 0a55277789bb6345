package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restunugroho/demand-forecast/internal/factories"
	"github.com/restunugroho/demand-forecast/internal/output"
	"github.com/restunugroho/demand-forecast/internal/simulator"
	"github.com/restunugroho/demand-forecast/internal/storage"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Simulates the order event log for a date range",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		start, end, err := cfg.DateRange()
		if err != nil {
			log.Fatalf("Invalid date range: %v", err)
		}

		ids, err := simulator.NewIDSource(cfg)
		if err != nil {
			log.Fatalf("Failed to create id source: %v", err)
		}

		outlets := cfg.Outlets
		if cfg.ExtraOutlets > 0 {
			factory := &factories.OutletFactory{}
			outlets = factory.ExpandCatalog(outlets, cfg.ExtraOutlets)
		}

		scheduler := simulator.NewScheduler(cfg, ids, outlets)
		events, err := scheduler.GenerateRange(start, end)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}

		store, err := storage.NewStore(cfg)
		if err != nil {
			log.Fatalf("Failed to create store: %v", err)
		}
		if err := store.WriteOrderEvents(cfg.EventsFileName(), events); err != nil {
			log.Fatalf("Failed to write event table: %v", err)
		}
		log.Printf("Saved %d events to %s", len(events), cfg.EventsFileName())

		stream, err := simulator.NewEventStream(cfg)
		if err != nil {
			log.Fatalf("Failed to create event stream: %v", err)
		}
		if stream != nil {
			defer stream.Close()
			if err := simulator.StreamEvents(stream, cfg.KafkaTopic, events); err != nil {
				log.Fatalf("Failed to stream events: %v", err)
			}
		}

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
			if err := sink.BulkInsertOrderEvents(ctx, events); err != nil {
				log.Fatalf("Failed to insert events: %v", err)
			}
		}
	},
}

func init() {
	generateCmd.Flags().Int("workers", 1, "Parallel day-generation workers")
	generateCmd.Flags().String("id-strategy", "cuid", "Order id strategy: cuid or sequence")
	generateCmd.Flags().String("attribute-policy", "creation_only", "Attribute columns on non-creation events: creation_only or all_events")
	generateCmd.Flags().String("event-stream", "none", "Also stream events to a side channel: none, console or kafka")
	generateCmd.Flags().Int("extra-outlets", 0, "Synthesize additional outlets beyond the configured catalog")

	viper.BindPFlag("workers", generateCmd.Flags().Lookup("workers"))
	viper.BindPFlag("id_strategy", generateCmd.Flags().Lookup("id-strategy"))
	viper.BindPFlag("attribute_policy", generateCmd.Flags().Lookup("attribute-policy"))
	viper.BindPFlag("event_stream", generateCmd.Flags().Lookup("event-stream"))
	viper.BindPFlag("extra_outlets", generateCmd.Flags().Lookup("extra-outlets"))

	rootCmd.AddCommand(generateCmd)
}
