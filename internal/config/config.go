package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	PayPal    PayPalConfig    `koanf:"paypal"`
	Logger    LoggerConfig    `koanf:"logger"`
	Worker    WorkerConfig    `koanf:"worker"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig holds the HTTP server settings. RequestTimeout bounds handlers
// and stays below WriteTimeout so the timeout response can still be written.
type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required,ltfield=WriteTimeout"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// PayPalConfig holds the gateway credentials. API, ClientID and Secret are
// required; everything else has a default.
//
// Secret is read from the environment. Deployments that keep credentials in
// a secret manager should export it into GATEWAY_PAYPAL__SECRET before start.
type PayPalConfig struct {
	API                string        `koanf:"api" validate:"required,url"`
	ClientID           string        `koanf:"client_id" validate:"required"`
	Secret             string        `koanf:"secret" validate:"required"`
	BrandName          string        `koanf:"brand_name" validate:"required"`
	ShippingPreference string        `koanf:"shipping_preference" validate:"oneof=GET_FROM_FILE NO_SHIPPING SET_PROVIDED_ADDRESS"`
	Intent             string        `koanf:"intent" validate:"oneof=CAPTURE AUTHORIZE"`
	Timeout            time.Duration `koanf:"timeout" validate:"required"`
	TokenSafetyMargin  time.Duration `koanf:"token_safety_margin"`
}

type WorkerConfig struct {
	Interval     time.Duration `koanf:"interval" validate:"required"`
	BatchSize    int           `koanf:"batch_size" validate:"required"`
	StaleAfter   time.Duration `koanf:"stale_after" validate:"required"`
	AbandonAfter time.Duration `koanf:"abandon_after" validate:"required,gtfield=StaleAfter"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.request_timeout":     "10s",
		"paypal.brand_name":          "bedrock-order",
		"paypal.shipping_preference": "NO_SHIPPING",
		"paypal.intent":              "CAPTURE",
		"paypal.timeout":             "30s",
		"paypal.token_safety_margin": "5s",
		"worker.interval":            "1m",
		"worker.batch_size":          50,
		"worker.stale_after":         "15m",
		"worker.abandon_after":       "72h",
		"logger.level":               "info",
		"logger.format":              "json",
		"telemetry.enabled":          false,
		"telemetry.endpoint":         "http://localhost:4318/v1/traces",
		"telemetry.service_name":     "paypal-gateway",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
