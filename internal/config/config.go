package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string         `yaml:"port"`
	Cache    CacheConfig    `yaml:"cache"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Tuning   TuningConfig   `yaml:"tuning"`
}

// Duration lets YAML carry Go duration strings like "5m" or "3s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type CacheConfig struct {
	Enabled   bool     `yaml:"enabled"`
	RedisHost string   `yaml:"redis_host"`
	RedisPort string   `yaml:"redis_port"`
	Password  string   `yaml:"password"`
	DB        int      `yaml:"db"`
	TTL       Duration `yaml:"ttl"`
}

type UpstreamConfig struct {
	BaseURL           string   `yaml:"base_url"`
	APIKey            string   `yaml:"api_key"`
	Timeout           Duration `yaml:"timeout"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	BurstSize         int      `yaml:"burst_size"`
}

type TuningConfig struct {
	AcceptanceRatio  float64 `yaml:"acceptance_ratio"`
	LongStayDiscount float64 `yaml:"long_stay_discount"`
	PaddingFloor     int     `yaml:"padding_floor"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Cache: CacheConfig{
			Enabled:   true,
			RedisHost: "localhost",
			RedisPort: "6379",
			TTL:       Duration(5 * time.Minute),
		},
		Upstream: UpstreamConfig{
			Timeout:           Duration(5 * time.Second),
			RequestsPerSecond: 10,
			BurstSize:         20,
		},
		Tuning: TuningConfig{
			AcceptanceRatio:  1.15,
			LongStayDiscount: 0.05,
			PaddingFloor:     10,
		},
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides on top. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Cache.Enabled = getEnvBool("CACHE_ENABLED", c.Cache.Enabled)
	c.Cache.RedisHost = getEnv("REDIS_HOST", c.Cache.RedisHost)
	c.Cache.RedisPort = getEnv("REDIS_PORT", c.Cache.RedisPort)
	c.Cache.TTL = Duration(getEnvDuration("REDIS_TTL", c.Cache.TTL.Std()))
	c.Upstream.BaseURL = getEnv("UPSTREAM_URL", c.Upstream.BaseURL)
	c.Upstream.APIKey = getEnv("UPSTREAM_API_KEY", c.Upstream.APIKey)
	c.Upstream.Timeout = Duration(getEnvDuration("UPSTREAM_TIMEOUT", c.Upstream.Timeout.Std()))
	c.Tuning.PaddingFloor = getEnvInt("PADDING_FLOOR", c.Tuning.PaddingFloor)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
