package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Cache     CacheConfig     `toml:"cache"`
	Redis     RedisConfig     `toml:"redis"`
	Mail      MailConfig      `toml:"mail"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Timezone        string `toml:"timezone"`
	PublicURL       string `toml:"public_url"`
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
	MaxTxRetries    int    `toml:"max_tx_retries"`
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslmode)
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

type AuthConfig struct {
	JWTSecret  string `toml:"jwt_secret"`
	Issuer     string `toml:"issuer"`
	EmailClaim string `toml:"email_claim"`
}

// CacheConfig selects the lookup cache backend: "memory" or "redis"
type CacheConfig struct {
	Backend    string `toml:"backend"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL cache entry lifetime
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// MailConfig selects the mail transport: "smtp", "relay" or "log"
type MailConfig struct {
	Transport         string `toml:"transport"`
	From              string `toml:"from"`
	SMTPHost          string `toml:"smtp_host"`
	SMTPPort          int    `toml:"smtp_port"`
	SMTPUser          string `toml:"smtp_user"`
	SMTPPassword      string `toml:"smtp_password"`
	RelayURL          string `toml:"relay_url"`
	RelayTimeout      int    `toml:"relay_timeout"`
	QueueSize         int    `toml:"queue_size"`
	Workers           int    `toml:"workers"`
	DefaultSenderName string `toml:"default_sender_name"`
}

type SchedulerConfig struct {
	Enabled      bool `toml:"enabled"`
	DigestHour   int  `toml:"digest_hour"`
	ReminderHour int  `toml:"reminder_hour"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

var (
	// ErrReadConfig returned when the TOML file cannot be decoded
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig returned when a required value is missing or out of range
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Load reads .env (if present), then the TOML file, then environment overrides
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			Timezone:        "America/Santo_Domingo",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MaxTxRetries:    3,
		},
		Logs:      LogsConfig{Level: "info"},
		Metrics:   MetricsConfig{Path: "/metrics", ServiceName: "salon-service"},
		Auth:      AuthConfig{EmailClaim: "email"},
		Cache:     CacheConfig{Backend: "memory", TTLSeconds: 300},
		Redis:     RedisConfig{Addr: "localhost:6379", KeyPrefix: "salons:"},
		Mail:      MailConfig{Transport: "log", SMTPPort: 587, RelayTimeout: 10, QueueSize: 256, Workers: 2, DefaultSenderName: "Reserva de Salones"},
		Scheduler: SchedulerConfig{DigestHour: 5, ReminderHour: 7},
		RateLimit: RateLimitConfig{RequestsPerSecond: 2, Burst: 10},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// applyEnv lets secrets stay out of config.toml
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Mail.SMTPPassword, "SMTP_PASSWORD")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate checks required values
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("%w: cache.backend=%q", ErrInvalidConfig, c.Cache.Backend)
	}
	switch c.Mail.Transport {
	case "smtp", "relay", "log":
	default:
		return fmt.Errorf("%w: mail.transport=%q", ErrInvalidConfig, c.Mail.Transport)
	}
	if c.Scheduler.DigestHour < 0 || c.Scheduler.DigestHour > 23 || c.Scheduler.ReminderHour < 0 || c.Scheduler.ReminderHour > 23 {
		return fmt.Errorf("%w: scheduler hours must be within 0..23", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("%w: server.timezone=%q: %v", ErrInvalidConfig, c.Server.Timezone, err)
	}
	return nil
}

// Location resolves server.timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
