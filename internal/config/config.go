package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config contains application configuration parameters. Values are
// layered: built-in defaults, then the optional YAML file named by
// CONFIG_FILE, then environment variables.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" yaml:"log_level"`
	Storage  Storage `envPrefix:"STORAGE_" yaml:"storage"`
	App      App     `envPrefix:"APP_" yaml:"app"`
}

// Storage contains local database parameters.
type Storage struct {
	Dir  string `env:"DIR" yaml:"dir"`
	Name string `env:"NAME" yaml:"name"`
}

// App contains directory-application parameters.
type App struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" yaml:"default_language"`
	SeedSampleData  bool   `env:"SEED_SAMPLE_DATA" yaml:"seed_sample_data"`
}

func defaults() Config {
	return Config{
		LogLevel: 0,
		Storage: Storage{
			Dir:  ".",
			Name: "staffdir",
		},
		App: App{
			DefaultLanguage: "en",
			SeedSampleData:  true,
		},
	}
}

// NewConfig loads configuration from the optional YAML file and the
// environment.
func NewConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
