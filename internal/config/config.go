// Package config loads bitlab settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file is not an error.
const DefaultPath = "bitlab.yaml"

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Explainer ExplainerConfig `mapstructure:"explainer"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ExplainerConfig struct {
	Model   string        `mapstructure:"model"`
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend"` // memory, redis or none
	TTL     time.Duration `mapstructure:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() map[string]any {
	return map[string]any{
		"server": map[string]any{"port": "8080"},
		"log":    map[string]any{"level": "info", "format": "text"},
		"explainer": map[string]any{
			"model":   domain.DefaultModel,
			"timeout": "30s",
		},
		"cache": map[string]any{
			"backend": "memory",
			"ttl":     "1h",
			"redis":   map[string]any{"addr": "localhost:6379", "db": 0},
		},
		"metrics": map[string]any{"enabled": true},
	}
}

// envBindings maps environment variables onto dotted config keys.
// Earlier entries win when several are set for one key.
var envBindings = []struct {
	env string
	key string
}{
	{"BITLAB_PORT", "server.port"},
	{"BITLAB_LOG_LEVEL", "log.level"},
	{"BITLAB_LOG_FORMAT", "log.format"},
	{"BITLAB_MODEL", "explainer.model"},
	{"BITLAB_API_KEY", "explainer.api_key"},
	{"GEMINI_API_KEY", "explainer.api_key"},
	{domain.KeyAPIKey, "explainer.api_key"},
	{"BITLAB_EXPLAINER_URL", "explainer.base_url"},
	{"BITLAB_EXPLAINER_TIMEOUT", "explainer.timeout"},
	{"BITLAB_CACHE", "cache.backend"},
	{"BITLAB_CACHE_TTL", "cache.ttl"},
	{"BITLAB_REDIS_ADDR", "cache.redis.addr"},
	{"BITLAB_REDIS_PASSWORD", "cache.redis.password"},
	{"BITLAB_REDIS_DB", "cache.redis.db"},
	{"BITLAB_METRICS", "metrics.enabled"},
}

// Load reads path (YAML) over the defaults and applies environment overrides.
// An empty path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	raw := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var file map[string]any
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merge(raw, file)
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file, defaults and environment only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	seen := make(map[string]bool)
	for _, b := range envBindings {
		if seen[b.key] {
			continue
		}
		if v, ok := lookup(b.env); ok && v != "" {
			set(raw, b.key, v)
			seen[b.key] = true
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Cache.Backend) {
	case "memory", "redis", "none", "":
	default:
		return fmt.Errorf("invalid config: cache.backend %q must be memory, redis or none", c.Cache.Backend)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "":
	default:
		return fmt.Errorf("invalid config: log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

// merge copies src into dst recursively; nested maps are merged, other values replaced.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

func set(dst map[string]any, dotted string, value any) {
	parts := strings.Split(dotted, ".")
	m := dst
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
