package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restunugroho/demand-forecast/internal/models"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "demandforecast",
	Short: "Synthesizes food delivery transactions and builds hourly demand features",
	Long: `demandforecast is a CLI tool that simulates a realistic food-delivery
transaction log, aggregates it into an hourly demand time series, and derives
the lag and seasonality features a demand model trains on.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("start-date", "", "Start date of the range (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().String("end-date", "", "End date of the range (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().Int64("seed", 42, "Random seed for generation")
	rootCmd.PersistentFlags().String("output-path", "data", "Base directory for output tables")

	viper.BindPFlag("start_date", rootCmd.PersistentFlags().Lookup("start-date"))
	viper.BindPFlag("end_date", rootCmd.PersistentFlags().Lookup("end-date"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output-path"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

// loadConfig reads and validates the configuration, exiting on error before
// any output is produced.
func loadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
