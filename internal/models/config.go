package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d *DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type Config struct {
	NumberOfDrivers int           `mapstructure:"number_of_drivers"`
	StartTime       string        `mapstructure:"start_time"`
	MaxHoursPerDay  int           `mapstructure:"max_hours_per_day"`
	RunTimeout      time.Duration `mapstructure:"run_timeout"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	OutputFolder  string `mapstructure:"output_folder"`
	ExportParquet bool   `mapstructure:"export_parquet"`

	S3Bucket string `mapstructure:"s3_bucket"`
	S3Region string `mapstructure:"s3_region"`

	MetricsAddr string `mapstructure:"metrics_addr"`

	// Seed sizes for `fleetsim seed`.
	SeedDrivers int `mapstructure:"seed_drivers"`
	SeedRoutes  int `mapstructure:"seed_routes"`
	SeedOrders  int `mapstructure:"seed_orders"`

	Database DatabaseConfig `mapstructure:"database"`
}

// SimulationInput extracts the engine-facing parameters from the config.
func (cfg *Config) SimulationInput() SimulationInput {
	return SimulationInput{
		NumberOfDrivers: cfg.NumberOfDrivers,
		StartTime:       cfg.StartTime,
		MaxHoursPerDay:  cfg.MaxHoursPerDay,
	}
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

	viper.SetDefault("start_time", "09:00")
	viper.SetDefault("number_of_drivers", 5)
	viper.SetDefault("max_hours_per_day", 8)
	viper.SetDefault("run_timeout", "30s")
	viper.SetDefault("kafka_topic", "simulation_runs")
	viper.SetDefault("seed_drivers", 20)
	viper.SetDefault("seed_routes", 15)
	viper.SetDefault("seed_orders", 100)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
