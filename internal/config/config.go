package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
// (например ANYVENUE_DATABASE_PASSWORD, ANYVENUE_AUTH_JWTSECRET)
const EnvPrefix = "ANYVENUE"

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Slots     SlotsConfig     `toml:"slots"`
	Auth      AuthConfig      `toml:"auth"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Broker    BrokerConfig    `toml:"broker"`
	Tracing   TracingConfig   `toml:"tracing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	TxMaxRetries    int    `toml:"tx_max_retries"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig шаблон генерации слотов и горизонт бронирования
type SlotsConfig struct {
	StartHour    int    `toml:"start_hour"`
	EndHour      int    `toml:"end_hour"`
	PrefetchDays int    `toml:"prefetch_days"`
	HorizonDays  int    `toml:"horizon_days"`
	Timezone     string `toml:"timezone"`
}

// Location часовой пояс площадок, в котором считается "сейчас"
func (c SlotsConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled        bool   `toml:"enabled"`
	Prefix         string `toml:"prefix"`
	Capacity       int    `toml:"capacity"`
	RefillTokens   int    `toml:"refill_tokens"`
	RefillInterval int    `toml:"refill_interval_ms"`
	TTL            int    `toml:"ttl_seconds"`
}

type BrokerConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type TracingConfig struct {
	Enabled     bool    `toml:"enabled"`
	Endpoint    string  `toml:"endpoint"`
	Environment string  `toml:"environment"`
	SampleRatio float64 `toml:"sample_ratio"`
}

// Load читает config.toml, подхватывает .env (если есть) и применяет
// переопределения из окружения с префиксом ANYVENUE_
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения, которые действуют, если ключ не указан в config.toml
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxRetries:    3,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "any-venue",
		},
		Slots: SlotsConfig{
			StartHour:    8,
			EndHour:      22,
			PrefetchDays: 7,
			HorizonDays:  30,
			Timezone:     "Asia/Jakarta",
		},
		RateLimit: RateLimitConfig{
			Prefix:         "rl:any-venue",
			Capacity:       20,
			RefillTokens:   1,
			RefillInterval: 1000,
			TTL:            600,
		},
		Broker: BrokerConfig{Exchange: "any-venue.events"},
		Tracing: TracingConfig{
			Environment: "dev",
			SampleRatio: 1,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Slots.StartHour < 0 || c.Slots.EndHour > 23 || c.Slots.StartHour >= c.Slots.EndHour {
		return fmt.Errorf("%w: slots hours [%d, %d) must satisfy 0 <= start < end <= 23",
			ErrInvalidConfig, c.Slots.StartHour, c.Slots.EndHour)
	}
	if c.Slots.PrefetchDays <= 0 {
		return fmt.Errorf("%w: slots.prefetch_days must be positive", ErrInvalidConfig)
	}
	if c.Slots.HorizonDays < c.Slots.PrefetchDays-1 {
		return fmt.Errorf("%w: slots.horizon_days=%d is shorter than the prefetch window",
			ErrInvalidConfig, c.Slots.HorizonDays)
	}
	if _, err := c.Slots.Location(); err != nil {
		return fmt.Errorf("%w: slots.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Broker.Enabled && c.Broker.URL == "" {
		return fmt.Errorf("%w: broker.url is required when broker is enabled", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("%w: rate_limit.capacity must be positive", ErrInvalidConfig)
	}
	return nil
}
