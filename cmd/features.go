package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/restunugroho/demand-forecast/internal/features"
	"github.com/restunugroho/demand-forecast/internal/storage"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Builds the model-ready feature table from hourly demand",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		store, err := storage.NewStore(cfg)
		if err != nil {
			log.Fatalf("Failed to create store: %v", err)
		}

		records, err := store.ReadDemand(cfg.DemandFileName())
		if err != nil {
			log.Fatalf("Failed to read demand table: %v", err)
		}

		rows, err := features.Build(records, cfg.Calendar())
		if err != nil {
			log.Fatalf("Feature building failed: %v", err)
		}

		if err := store.WriteFeatures(cfg.FeaturesFileName(), rows); err != nil {
			log.Fatalf("Failed to write feature table: %v", err)
		}
		log.Printf("Built %d feature rows with columns: demand + %d predictors",
			len(rows), len(features.FeatureColumns()))
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}
