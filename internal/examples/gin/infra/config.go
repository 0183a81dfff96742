package infra

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	Addr     string `yaml:"addr"`
	DBPath   string `yaml:"db_path"`
	Storage  string `yaml:"storage"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		DBPath:   "./database.db",
		Storage:  StorageSQLite,
		LogLevel: "info",
	}
}

// LoadConfig starts from DefaultConfig, then applies the YAML file at path
// (when path is not empty), then the environment. envFiles are loaded into
// the environment first, missing ones are ignored.
//
// Environment variables: ADDR, DB_PATH, STORAGE, LOG_LEVEL.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// .env files are optional
	_ = godotenv.Load(envFiles...)

	overrideFromEnv(&config.Addr, "ADDR")
	overrideFromEnv(&config.DBPath, "DB_PATH")
	overrideFromEnv(&config.Storage, "STORAGE")
	overrideFromEnv(&config.LogLevel, "LOG_LEVEL")

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage %q, expected %q or %q", c.Storage, StorageSQLite, StorageMemory)
	}
}

func overrideFromEnv(field *string, key string) {
	if value, found := os.LookupEnv(key); found && value != "" {
		*field = value
	}
}
