package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, data directory)
// - default: Values common across all environments (timezone, CORS, metrics)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	// DataDir holds one JSON snapshot file per collection key.
	DataDir string `envconfig:"STORE_DATA_DIR" default:"./data"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type MetricsConfig struct {
	Enabled     bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path        string `envconfig:"METRICS_PATH" default:"/metrics"`
	ServiceName string `envconfig:"METRICS_SERVICE_NAME" default:"hotel-ops"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Store: StoreConfig{
			DataDir: "./testdata",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
