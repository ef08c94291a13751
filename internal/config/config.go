// Package config - загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        DatabaseConfig    `toml:"database"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	FleetService    IntegrationConfig `toml:"fleet_service"`
	IdentityService IntegrationConfig `toml:"identity_service"`
	RateLimit       RateLimitConfig   `toml:"rate_limit"`
	Policy          PolicyConfig      `toml:"policy"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	QueryTimeout    int    `toml:"query_timeout"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// IntegrationConfig настройки внешнего HTTP сервиса (таймаут в секундах)
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig настройки rate limiter'а для публичных мутаций
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

// PolicyConfig политика доступности чартеров
// Нулевые значения заменяются дефолтами при загрузке
type PolicyConfig struct {
	DayStartHour            int `toml:"day_start_hour"`
	DayEndHour              int `toml:"day_end_hour"`
	MorningEndHour          int `toml:"morning_end_hour"`
	BufferStartHour         int `toml:"buffer_start_hour"`
	BufferEndHour           int `toml:"buffer_end_hour"`
	AfternoonStartHour      int `toml:"afternoon_start_hour"`
	MinDurationHours        int `toml:"min_duration_hours"`
	MaxDurationHours        int `toml:"max_duration_hours"`
	InterBookingBufferHours int `toml:"inter_booking_buffer_hours"`
	TimeStepMinutes         int `toml:"time_step_minutes"`
}

// ToDomain конвертирует секцию политики в доменную модель
func (p PolicyConfig) ToDomain() domain.Policy {
	policy := domain.DefaultPolicy()

	if p.DayStartHour > 0 {
		policy.DayStartHour = p.DayStartHour
	}
	if p.DayEndHour > 0 {
		policy.DayEndHour = p.DayEndHour
	}
	if p.MorningEndHour > 0 {
		policy.MorningEndHour = p.MorningEndHour
	}
	if p.BufferStartHour > 0 {
		policy.BufferStartHour = p.BufferStartHour
	}
	if p.BufferEndHour > 0 {
		policy.BufferEndHour = p.BufferEndHour
	}
	if p.AfternoonStartHour > 0 {
		policy.AfternoonStartHour = p.AfternoonStartHour
	}
	if p.MinDurationHours > 0 {
		policy.MinDurationHours = p.MinDurationHours
	}
	if p.MaxDurationHours > 0 {
		policy.MaxDurationHours = p.MaxDurationHours
	}
	if p.InterBookingBufferHours > 0 {
		policy.InterBookingBufferHours = p.InterBookingBufferHours
	}
	if p.TimeStepMinutes > 0 {
		policy.TimeStepMinutes = p.TimeStepMinutes
	}

	return policy
}

// Load загружает и валидирует конфигурацию из TOML файла
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
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}

	policy := c.Policy.ToDomain()
	if policy.DayStartHour >= policy.DayEndHour {
		return fmt.Errorf("config: policy day window is empty (%d >= %d)",
			policy.DayStartHour, policy.DayEndHour)
	}
	if policy.MorningEndHour > policy.AfternoonStartHour {
		return fmt.Errorf("config: policy morning end %d is after afternoon start %d",
			policy.MorningEndHour, policy.AfternoonStartHour)
	}
	if policy.MinDurationHours > policy.MaxDurationHours {
		return fmt.Errorf("config: policy min duration %d exceeds max %d",
			policy.MinDurationHours, policy.MaxDurationHours)
	}
	if policy.InterBookingBufferHours < 0 {
		return fmt.Errorf("config: policy inter-booking buffer must not be negative")
	}

	return nil
}
