package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigPath переменная окружения с путем к конфигу
	EnvConfigPath = "CONFIG_PATH"
	// DefaultPath путь к конфигу по умолчанию
	DefaultPath = "config.toml"

	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Sessions SessionsConfig `toml:"sessions"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	PublicURL       string `toml:"public_url"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogConfig источник каталога больниц
type CatalogConfig struct {
	Source string `toml:"source"` // memory | postgres
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SessionsConfig хранилище календарных сессий
type SessionsConfig struct {
	Store      string `toml:"store"`       // memory | redis
	TTLMinutes int    `toml:"ttl_minutes"` // время жизни сессии
}

// TTL время жизни сессии
func (s SessionsConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// RedisConfig подключение к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// BookingConfig параметры подтверждения записи
type BookingConfig struct {
	IDPrefix string `toml:"id_prefix"`
	Currency string `toml:"currency"`
	QRSize   int    `toml:"qr_size"` // px
}

// CalendarConfig параметры календаря
type CalendarConfig struct {
	Timezone string `toml:"timezone"` // IANA, например Asia/Riyadh
}

// Location временная зона календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PathFromEnv путь к конфигу из CONFIG_PATH или config.toml
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Default конфигурация по умолчанию: каталог и сессии в памяти
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			PublicURL:       "http://localhost:8080",
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hospital-booking-service",
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Sessions: SessionsConfig{
			Store:      SessionStoreMemory,
			TTLMinutes: 30,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Booking: BookingConfig{
			IDPrefix: "MAVEN-",
			Currency: "SAR",
			QRSize:   256,
		},
		Calendar: CalendarConfig{
			Timezone: "UTC",
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Server.PublicURL == "" {
		return fmt.Errorf("%w: server.public_url is required", ErrInvalidConfig)
	}

	switch c.Catalog.Source {
	case CatalogSourceMemory:
	case CatalogSourcePostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres catalog", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: catalog.source must be memory or postgres, got %q", ErrInvalidConfig, c.Catalog.Source)
	}

	switch c.Sessions.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis session store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: sessions.store must be memory or redis, got %q", ErrInvalidConfig, c.Sessions.Store)
	}

	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("%w: sessions.ttl_minutes must be positive", ErrInvalidConfig)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
