package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig       `toml:"server"`
	Logs       LogsConfig         `toml:"logs"`
	Metrics    MetricsConfig      `toml:"metrics"`
	BookingAPI BookingAPIConfig   `toml:"booking_api"`
	Sessions   SessionsConfig     `toml:"sessions"`
	RateLimit  RateLimitConfig    `toml:"rate_limit"`
	Promos     map[string]float64 `toml:"promos"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingAPIConfig настройки клиента booking-бэкенда
type BookingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SessionsConfig настройки реестра сессий конфигуратора
type SessionsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// RateLimitConfig настройки rate limiter для публичного API виджета
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с безопасными дефолтами
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8083,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-configurator-service",
		},
		BookingAPI: BookingAPIConfig{
			Timeout: 10,
		},
		Sessions: SessionsConfig{
			TTLMinutes:             60,
			CleanupIntervalMinutes: 5,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Promos: map[string]float64{},
	}
}

// validate проверяет согласованность загруженной конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.BookingAPI.URL == "" {
		return fmt.Errorf("config: booking_api.url is required")
	}
	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("config: booking_api.timeout must be positive")
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("config: sessions.ttl_minutes must be positive")
	}
	if c.Sessions.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("config: sessions.cleanup_interval_minutes must be positive")
	}
	// Промо-множитель больше 1.0 означал бы наценку, а не скидку
	for code, multiplier := range c.Promos {
		if multiplier <= 0 || multiplier > 1.0 {
			return fmt.Errorf("config: invalid promo multiplier %f for code %q", multiplier, code)
		}
	}
	return nil
}
