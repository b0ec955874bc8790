package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"

	CreationPolicyAccept   = "accept"
	CreationPolicyPrecheck = "precheck"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Notify   NotifyConfig   `toml:"notify"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`

	// канал LISTEN/NOTIFY для сброса кэша вместимости, пусто - отключено
	NotifyChannel        string `toml:"notify_channel"`
	ListenerMinReconnect int    `toml:"listener_min_reconnect"`
	ListenerMaxReconnect int    `toml:"listener_max_reconnect"`
}

// DSN строка подключения в формате key=value (понимают и lib/pq, и pgx)
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-настройки бронирований
type BookingConfig struct {
	// AutoApprove сразу пытается подтвердить новую заявку
	AutoApprove bool `toml:"auto_approve"`

	// CreationPolicy accept - заявка принимается всегда,
	// precheck - заявка отклоняется, если по текущим данным мест уже нет
	CreationPolicy string `toml:"creation_policy"`

	MaxStayNights int `toml:"max_stay_nights"`

	// CacheTTL время жизни таблицы вместимости в кэше, секунды
	CacheTTL int `toml:"cache_ttl"`
}

// NotifyConfig webhook уведомлений о смене статуса, пустой URL - отключено
type NotifyConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// AdminConfig администраторы гостиницы
type AdminConfig struct {
	UserIDs []int64 `toml:"user_ids"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из окружения (PETHOTEL_DB_HOST, PETHOTEL_DB_PASSWORD, ...)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyDefaults(cfg)

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 15)
	setDefault(&cfg.Server.WriteTimeout, 15)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 10)

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	setDefault(&cfg.Database.Port, 5432)
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	setDefault(&cfg.Database.MaxOpenConns, 25)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)
	setDefault(&cfg.Database.ListenerMinReconnect, 10)
	setDefault(&cfg.Database.ListenerMaxReconnect, 60)

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "pethotel"
	}

	if cfg.Booking.CreationPolicy == "" {
		cfg.Booking.CreationPolicy = CreationPolicyAccept
	}
	setDefault(&cfg.Booking.MaxStayNights, 60)
	setDefault(&cfg.Booking.CacheTTL, 60)

	setDefault(&cfg.Notify.Timeout, 5)
}

func setDefault(field *int, value int) {
	if *field == 0 {
		*field = value
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PETHOTEL_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("PETHOTEL_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PETHOTEL_DB_PORT=%q", ErrInvalidConfig, v)
		}
		cfg.Database.Port = port
	}
	if v := os.Getenv("PETHOTEL_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("PETHOTEL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PETHOTEL_DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("PETHOTEL_NOTIFY_URL"); v != "" {
		cfg.Notify.URL = v
	}
	return nil
}

// Validate проверяет значения, которые нельзя исправить значением по умолчанию
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port=%d out of range", c.Server.HTTPPort))
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverPgx {
		problems = append(problems, fmt.Sprintf("database.driver=%q must be %q or %q", c.Database.Driver, DriverPostgres, DriverPgx))
	}
	if c.Booking.CreationPolicy != CreationPolicyAccept && c.Booking.CreationPolicy != CreationPolicyPrecheck {
		problems = append(problems, fmt.Sprintf("booking.creation_policy=%q must be %q or %q",
			c.Booking.CreationPolicy, CreationPolicyAccept, CreationPolicyPrecheck))
	}
	if c.Booking.MaxStayNights < 1 {
		problems = append(problems, "booking.max_stay_nights must be positive")
	}
	for _, id := range c.Admin.UserIDs {
		if id <= 0 {
			problems = append(problems, fmt.Sprintf("admin.user_ids contains invalid id %d", id))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
