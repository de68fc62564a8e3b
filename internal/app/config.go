package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/taskbot/core/config"
	coredatabase "github.com/m3rciful/taskbot/core/database"
)

// Config composes the reusable core configuration with the database
// settings this application needs.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
}

// LoadConfig reads the application config from a YAML file and overlays
// environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := normalizeDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalizeDatabase(db *coredatabase.Config) error {
	if strings.TrimSpace(db.Host) == "" {
		return fmt.Errorf("database.host is required")
	}
	if strings.TrimSpace(db.Name) == "" {
		return fmt.Errorf("database.name is required")
	}
	if strings.TrimSpace(db.User) == "" {
		return fmt.Errorf("database.user is required")
	}
	if strings.TrimSpace(db.Port) == "" {
		db.Port = "5432"
	}
	if strings.TrimSpace(db.SSLMode) == "" {
		db.SSLMode = "disable"
	}
	if db.MaxConnections <= 0 {
		db.MaxConnections = 10
	}
	return nil
}
