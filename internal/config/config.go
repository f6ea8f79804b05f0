package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server              ServerConfig      `toml:"server"`
	Logs                LogsConfig        `toml:"logs"`
	Metrics             MetricsConfig     `toml:"metrics"`
	CourseService       IntegrationConfig `toml:"course_service"`
	AvailabilityService IntegrationConfig `toml:"availability_service"`
	BookingService      IntegrationConfig `toml:"booking_service"`
	Flow                FlowConfig        `toml:"flow"`
}

// ServerConfig настройки HTTP-сервера
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

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// FlowConfig настройки жизненного цикла флоу
type FlowConfig struct {
	SessionTTLMinutes    int `toml:"session_ttl_minutes"`
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
	ProbeTimeoutSeconds  int `toml:"probe_timeout_seconds"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.CourseService.URL == "" {
		return fmt.Errorf("config: course_service.url is required")
	}
	if c.AvailabilityService.URL == "" {
		return fmt.Errorf("config: availability_service.url is required")
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("config: booking_service.url is required")
	}
	if c.Flow.SessionTTLMinutes <= 0 {
		return fmt.Errorf("config: flow.session_ttl_minutes must be positive")
	}
	if c.Flow.SweepIntervalSeconds <= 0 {
		return fmt.Errorf("config: flow.sweep_interval_seconds must be positive")
	}
	if c.Flow.ProbeTimeoutSeconds <= 0 {
		return fmt.Errorf("config: flow.probe_timeout_seconds must be positive")
	}
	return nil
}
