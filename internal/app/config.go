package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every client environment variable.
const EnvPrefix = "MARKETPLACE_"

// Config holds runtime wiring options for building the client.
type Config struct {
	Home       string        `env:"HOME_DIR"`                                      // state directory, e.g. $HOME/.marketplace
	APIURL     string        `env:"API_URL" envDefault:"https://fakestoreapi.com"` // store API base URL
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`                      // per-command deadline
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"warn"`                   // logrus level
	LogFormat  string        `env:"LOG_FORMAT" envDefault:"text"`                  // text or json
	Passphrase string        `env:"PASSPHRASE"`                                    // optional; otherwise a device key is used
	Currency   string        `env:"CURRENCY" envDefault:"USD"`                     // USD or IDR price display
	Breaker    BreakerConfig `envPrefix:"BREAKER_"`                                // circuit breaker tuning
}

// BreakerConfig tunes the API circuit breaker.
type BreakerConfig struct {
	Failures uint32        `env:"FAILURES" envDefault:"5"`
	OpenFor  time.Duration `env:"OPEN_FOR" envDefault:"30s"`
}

// ServerConfig configures the development store API.
type ServerConfig struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	Secret        string        `env:"SECRET" envDefault:"storeapi-dev-secret"`
	RatePerSecond float64       `env:"RATE" envDefault:"20"`
	Burst         int           `env:"BURST" envDefault:"40"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
	Shutdown      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads an optional .env file and then MARKETPLACE_* variables.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	return cfg, nil
}

// LoadServerConfig reads an optional .env file and then STOREAPI_* variables.
func LoadServerConfig(envFile string) (ServerConfig, error) {
	if err := loadDotEnv(envFile); err != nil {
		return ServerConfig{}, err
	}
	var cfg ServerConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STOREAPI_"}); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultHome returns ~/.marketplace.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".marketplace"), nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
