package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		Seed:             42,
		StartDate:        "2024-05-01",
		EndDate:          "2024-05-07",
		WeekdayVolume:    5000,
		WeekendVolume:    7500,
		HolidayFactor:    1.5,
		TrendFactor:      0.2,
		CancellationRate: 0.1,
		IDStrategy:       IDStrategyCuid,
		SequenceStart:    1000,
		AttributePolicy:  AttributePolicyCreationOnly,
		Workers:          1,
	}
	cfg.applyDefaults()
	return cfg
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigValidateRejectsReversedRange(t *testing.T) {
	cfg := validConfig()
	cfg.StartDate = "2024-05-07"
	cfg.EndDate = "2024-05-01"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date range")
}

func TestConfigValidateRejectsMalformedDate(t *testing.T) {
	cfg := validConfig()
	cfg.StartDate = "01-05-2024"

	require.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsBadTables(t *testing.T) {
	cfg := validConfig()
	cfg.HourWeights = []int{1, 2, 3}
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.CancellationRate = 1.5
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.IDStrategy = "timestamp"
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.AttributePolicy = "sometimes"
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.EventStream = "stdout"
	require.Error(t, cfg.Validate())
}

// chdirTemp runs the test from a fresh directory so LoadConfig's default
// examples/config.json lookup resolves against it.
func chdirTemp(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
	return dir
}

func TestLoadConfigRejectsMalformedDefaultFile(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "examples"), 0o755))
	malformed := []byte(`{"weekday_volume": 123,`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "examples", "config.json"), malformed, 0o644))

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfigToleratesMissingDefaultFile(t *testing.T) {
	chdirTemp(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.WeekdayVolume)
	assert.Equal(t, EventStreamNone, cfg.EventStream)
}

func TestConfigDefaultsFillCatalogs(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Len(t, cfg.Outlets, 5)
	assert.Len(t, cfg.MenuItems, 4)
	assert.Equal(t, []string{OrderTypeApps, OrderTypeOffline}, cfg.OrderTypes)
	assert.Len(t, cfg.HourWeights, 24)
	assert.NotEmpty(t, cfg.Holidays)
}

func TestConfigFileNamesEncodeRange(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "food_orders_2024-05-01_to_2024-05-07.parquet", cfg.EventsFileName())
	assert.Equal(t, "demand_2024-05-01_to_2024-05-07.parquet", cfg.DemandFileName())
	assert.Equal(t, "features_2024-05-01_to_2024-05-07.parquet", cfg.FeaturesFileName())
}
