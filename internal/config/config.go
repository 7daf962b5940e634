package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvDatabasePassword = "DB_PASSWORD"
	EnvRedisPassword    = "REDIS_PASSWORD"
	EnvHTTPPort         = "HTTP_PORT"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	AccountService AccountServiceConfig `toml:"account_service"`
	Calendar       CalendarConfig       `toml:"calendar"`
	Bookings       BookingsConfig       `toml:"bookings"`
	Notifications  NotificationsConfig  `toml:"notifications"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type RedisConfig struct {
	Addr            string `toml:"addr" validate:"required,hostname_port"`
	Password        string `toml:"password"`
	DB              int    `toml:"db" validate:"min=0"`
	AvailabilityTTL int    `toml:"availability_ttl" validate:"min=0"` // секунды, 0 - без кеша
}

type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type AccountServiceConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"`
}

// CalendarConfig календарь сервиса: даты и дни недели считаются в этом смещении, а не в зоне хоста
type CalendarConfig struct {
	UTCOffsetHours int `toml:"utc_offset_hours" validate:"min=-12,max=14"`
}

type BookingsConfig struct {
	// AllowRequesterCancel разрешает клиенту отменять свою заявку в статусе pending_confirmation
	AllowRequesterCancel bool `toml:"allow_requester_cancel"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Stream  string `toml:"stream" validate:"required_if=Enabled true"`
	MaxLen  int64  `toml:"max_len" validate:"min=0"`
}

// Load читает TOML-файл, применяет переменные окружения (и .env, если есть) и валидирует результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию через теги validate
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			AvailabilityTTL: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "fitness-scheduling",
		},
		AccountService: AccountServiceConfig{
			Timeout: 5,
		},
		Calendar: CalendarConfig{
			UTCOffsetHours: -5,
		},
		Notifications: NotificationsConfig{
			Stream: "notifications:bookings",
			MaxLen: 10000,
		},
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		cfg.Redis.Password = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}

// Location фиксированная зона календаря сервиса
func (c CalendarConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+03d:00", c.UTCOffsetHours), c.UTCOffsetHours*3600)
}

// AvailabilityTTLDuration время жизни кеша недельного расписания
func (r RedisConfig) AvailabilityTTLDuration() time.Duration {
	return time.Duration(r.AvailabilityTTL) * time.Second
}

func (a AccountServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}
