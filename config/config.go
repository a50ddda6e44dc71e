package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"smokyhost/domain"
)

type Config struct {
	Environment string                   `yaml:"environment" default:"development" validate:"oneof=development staging production"`
	Server      ServerConfig             `yaml:"server"`
	Log         LogConfig                `yaml:"log"`
	Gemini      GeminiConfig             `yaml:"gemini"`
	Cache       CacheConfig              `yaml:"cache"`
	RateLimit   RateLimitConfig          `yaml:"rate_limit"`
	Scheduler   SchedulerConfig          `yaml:"scheduler"`
	SMTP        SMTPConfig               `yaml:"smtp"`
	Simulation  SimulationConfig         `yaml:"simulation"`
	Market      domain.MarketAssumptions `yaml:"market"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s" validate:"gt=0"`
	SlowRequest     time.Duration `yaml:"slow_request" default:"5s"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"json" validate:"oneof=json console"`
	Output string `yaml:"output" default:"stdout"`
}

type GeminiConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model" default:"gemini-2.5-flash" validate:"required"`
	Temperature float32       `yaml:"temperature" default:"0.7" validate:"gte=0,lte=2"`
	Timeout     time.Duration `yaml:"timeout" default:"20s" validate:"gte=0"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled" default:"true"`
	Backend string        `yaml:"backend" default:"memory" validate:"oneof=memory redis"`
	TTL     time.Duration `yaml:"ttl" default:"6h" validate:"gte=0"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" default:"localhost:6379" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
	Prefix   string `yaml:"prefix" default:"smokyhost"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity" default:"5" validate:"min=1"`
	Refill   time.Duration `yaml:"refill" default:"1m" validate:"gt=0"`
}

type SchedulerConfig struct {
	Enabled      bool          `yaml:"enabled" default:"true"`
	BriefingCron string        `yaml:"briefing_cron" default:"0 6 * * *" validate:"required"`
	Timeout      time.Duration `yaml:"timeout" default:"2m"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" default:"587" validate:"min=1,max=65535"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"omitempty,email"`
}

// Configured reports whether outgoing mail can be sent.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.From != ""
}

type SimulationConfig struct {
	HistoryLimit int `yaml:"history_limit" default:"50" validate:"gte=0"`
}

var validate = validator.New()

// Load builds the configuration from tagged defaults, the optional YAML file
// at path, a .env file in the working directory and the environment, in that
// order of precedence (later wins).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	c.Market = domain.DefaultMarketAssumptions()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// Validate checks the configuration. Market assumptions are checked by the
// projector.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	} else if v := os.Getenv("API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}

	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		c.SMTP.Port = port
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		c.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		c.SMTP.From = v
	}

	return nil
}
