package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Submitter SubmitterConfig
	Push      PushConfig
	Truck     TruckConfig
}

type ServerConfig struct {
	Port int
}

// DatabaseConfig describes the optional menu catalog store. With Enabled
// false the service runs in demo mode on the seeded menu.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

// SubmitterConfig selects the order placement variant: "local" synthesizes
// orders in-process, "http" hands them to the external order service.
type SubmitterConfig struct {
	Mode     string
	Endpoint string
	Timeout  time.Duration
}

type PushConfig struct {
	Buffer int
}

// TruckConfig is the truck's starting position, shown until the first push
// update arrives.
type TruckConfig struct {
	InitialLat float64
	InitialLng float64
}

const (
	SubmitterModeLocal = "local"
	SubmitterModeHTTP  = "http"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "kazhicho")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "kazhicho")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SUBMITTER_MODE", SubmitterModeLocal)
	viper.SetDefault("SUBMITTER_ENDPOINT", "http://localhost:4000/api/orders")
	viper.SetDefault("SUBMITTER_TIMEOUT", "10s")
	viper.SetDefault("PUSH_BUFFER", 16)
	viper.SetDefault("TRUCK_INITIAL_LAT", 12.9716)
	viper.SetDefault("TRUCK_INITIAL_LNG", 77.5946)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	submitterTimeout, err := time.ParseDuration(viper.GetString("SUBMITTER_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Submitter: SubmitterConfig{
			Mode:     viper.GetString("SUBMITTER_MODE"),
			Endpoint: viper.GetString("SUBMITTER_ENDPOINT"),
			Timeout:  submitterTimeout,
		},
		Push: PushConfig{
			Buffer: viper.GetInt("PUSH_BUFFER"),
		},
		Truck: TruckConfig{
			InitialLat: viper.GetFloat64("TRUCK_INITIAL_LAT"),
			InitialLng: viper.GetFloat64("TRUCK_INITIAL_LNG"),
		},
	}

	return cfg, nil
}
