package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "HAUS_"

// StoreKind selects where the session slot lives.
type StoreKind string

const (
	StoreFile   StoreKind = "file"
	StoreRedis  StoreKind = "redis"
	StoreMemory StoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StoreKind) UnmarshalText(b []byte) error {
	switch v := StoreKind(strings.ToLower(strings.TrimSpace(string(b)))); v {
	case StoreFile, StoreRedis, StoreMemory:
		*k = v
		return nil
	case "":
		*k = StoreFile
		return nil
	default:
		return fmt.Errorf("unknown session store %q (want file, redis or memory)", string(b))
	}
}

// RedisConfig locates the Redis session slot.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Key      string `env:"KEY" envDefault:"haus:session"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the session directory, e.g. $HOME/.haus.
	Home string `env:"HOME_DIR"`
	// BackendURL is the household backend base URL.
	BackendURL string    `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	Store      StoreKind `env:"SESSION_STORE" envDefault:"file"`
	// Passphrase seals the session file when set.
	Passphrase string `env:"SESSION_PASSPHRASE"`

	Redis RedisConfig `envPrefix:"REDIS_"`

	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	HTTPRetryAttempts int           `env:"HTTP_RETRY_ATTEMPTS" envDefault:"2"`
	HTTPRetryBackoff  time.Duration `env:"HTTP_RETRY_BACKOFF" envDefault:"500ms"`
	ReconcileDelay    time.Duration `env:"RECONCILE_DELAY" envDefault:"1s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Sanitize applies guardrails to values that came from the environment or flags.
func (c *Config) Sanitize() {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	c.Home = expandHome(strings.TrimSpace(c.Home))
	if c.Home == "" {
		c.Home = defaultHome()
	}
	if c.Store == "" {
		c.Store = StoreFile
	}
	if c.HTTPTimeout < 0 {
		c.HTTPTimeout = 0
	}
	if c.HTTPRetryAttempts < 1 {
		c.HTTPRetryAttempts = 1
	}
	if c.HTTPRetryBackoff < 0 {
		c.HTTPRetryBackoff = 0
	}
	if c.ReconcileDelay < 0 {
		c.ReconcileDelay = 0
	}
}

// LoadConfig reads Config from HAUS_* environment variables. A .env file in
// the working directory (or the given files) is loaded first when present.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".haus"
	}
	return filepath.Join(home, ".haus")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
