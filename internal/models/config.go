package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

type Config struct {
	Seed      int64  `mapstructure:"seed"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`

	WeekdayVolume    int     `mapstructure:"weekday_volume"`
	WeekendVolume    int     `mapstructure:"weekend_volume"`
	HolidayFactor    float64 `mapstructure:"holiday_factor"`
	TrendFactor      float64 `mapstructure:"trend_factor"`
	CancellationRate float64 `mapstructure:"cancellation_rate"`

	IDStrategy      string `mapstructure:"id_strategy"`
	SequenceStart   int64  `mapstructure:"sequence_start"`
	AttributePolicy string `mapstructure:"attribute_policy"`
	Workers         int    `mapstructure:"workers"`

	Outlets      []Outlet `mapstructure:"outlets"`
	ExtraOutlets int      `mapstructure:"extra_outlets"`
	MenuItems    []string `mapstructure:"menu_items"`
	OrderTypes   []string `mapstructure:"order_types"`
	HourWeights  []int    `mapstructure:"hour_weights"`
	Holidays     []string `mapstructure:"holidays"`

	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	EventStream     string `mapstructure:"event_stream"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	Database DatabaseConfig `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine (defaults plus flags are enough);
		// a present but unreadable one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("weekday_volume", 5000)
	viper.SetDefault("weekend_volume", 7500)
	viper.SetDefault("holiday_factor", 1.5)
	viper.SetDefault("trend_factor", 0.2)
	viper.SetDefault("cancellation_rate", 0.1)
	viper.SetDefault("id_strategy", IDStrategyCuid)
	viper.SetDefault("sequence_start", 1000)
	viper.SetDefault("attribute_policy", AttributePolicyCreationOnly)
	viper.SetDefault("workers", 1)
	viper.SetDefault("output_path", "data")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("event_stream", EventStreamNone)
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("kafka_topic", "order_events")
}

// applyDefaults fills the catalog tables that have no useful zero value.
func (cfg *Config) applyDefaults() {
	if len(cfg.Outlets) == 0 {
		cfg.Outlets = DefaultOutlets()
	}
	if len(cfg.MenuItems) == 0 {
		cfg.MenuItems = DefaultMenuItems()
	}
	if len(cfg.OrderTypes) == 0 {
		cfg.OrderTypes = DefaultOrderTypes()
	}
	if len(cfg.HourWeights) == 0 {
		w := DefaultHourWeights()
		cfg.HourWeights = w[:]
	}
	if len(cfg.Holidays) == 0 {
		cfg.Holidays = DefaultHolidays()
	}
	if cfg.EventStream == "" {
		cfg.EventStream = EventStreamNone
	}
}

// Validate checks the configuration and fails fast before any output is produced.
func (cfg *Config) Validate() error {
	start, end, err := cfg.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("invalid date range: end date %s before start date %s", cfg.EndDate, cfg.StartDate)
	}
	if cfg.WeekdayVolume < 0 || cfg.WeekendVolume < 0 {
		return fmt.Errorf("order volumes must be non-negative")
	}
	if cfg.CancellationRate < 0 || cfg.CancellationRate > 1 {
		return fmt.Errorf("cancellation_rate must be within [0,1], got %v", cfg.CancellationRate)
	}
	if len(cfg.HourWeights) != 24 {
		return fmt.Errorf("hour_weights must have exactly 24 entries, got %d", len(cfg.HourWeights))
	}
	for h, w := range cfg.HourWeights {
		if w < 0 {
			return fmt.Errorf("hour_weights[%d] must be non-negative, got %d", h, w)
		}
	}
	switch cfg.IDStrategy {
	case IDStrategyCuid, IDStrategySequence:
	default:
		return fmt.Errorf("unknown id_strategy: %q", cfg.IDStrategy)
	}
	switch cfg.AttributePolicy {
	case AttributePolicyCreationOnly, AttributePolicyAllEvents:
	default:
		return fmt.Errorf("unknown attribute_policy: %q", cfg.AttributePolicy)
	}
	switch cfg.EventStream {
	case EventStreamNone, EventStreamConsole, EventStreamKafka:
	default:
		return fmt.Errorf("unknown event_stream: %q", cfg.EventStream)
	}
	return nil
}

// DateRange parses the configured start and end dates (inclusive).
func (cfg *Config) DateRange() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(isoDate, cfg.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", cfg.StartDate, err)
	}
	end, err := time.ParseInLocation(isoDate, cfg.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", cfg.EndDate, err)
	}
	return start, end, nil
}

// Calendar builds the calendar value object from the configured tables.
func (cfg *Config) Calendar() Calendar {
	var weights [24]int
	copy(weights[:], cfg.HourWeights)
	return NewCalendar(weights, cfg.Holidays)
}

// EventsFileName encodes the date range into the raw event table name.
func (cfg *Config) EventsFileName() string {
	return fmt.Sprintf("food_orders_%s_to_%s.parquet", cfg.StartDate, cfg.EndDate)
}

// DemandFileName encodes the date range into the hourly demand table name.
func (cfg *Config) DemandFileName() string {
	return fmt.Sprintf("demand_%s_to_%s.parquet", cfg.StartDate, cfg.EndDate)
}

// FeaturesFileName encodes the date range into the feature table name.
func (cfg *Config) FeaturesFileName() string {
	return fmt.Sprintf("features_%s_to_%s.parquet", cfg.StartDate, cfg.EndDate)
}
