package deckvault

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the TOML config at path, then applies DECKVAULT_* env
// overrides on top so deployments can inject credentials without editing the
// file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if err = env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}
	return &cfg, nil
}

type Config struct {
	Log   LogConfig   `toml:"log"`
	HTTP  HTTPConfig  `toml:"http"`
	DB    DBConfig    `toml:"db"`
	Cache CacheConfig `toml:"cache"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add_source"`
}

type HTTPConfig struct {
	Addr string `toml:"addr" env:"DECKVAULT_HTTP_ADDR"`
}

type DBConfig struct {
	Host     string `toml:"host" env:"DECKVAULT_DB_HOST"`
	Port     int    `toml:"port" env:"DECKVAULT_DB_PORT"`
	User     string `toml:"user" env:"DECKVAULT_DB_USER"`
	Password string `toml:"password" env:"DECKVAULT_DB_PASSWORD"`
	Database string `toml:"database" env:"DECKVAULT_DB_NAME"`
	PoolSize int    `toml:"pool_size" env:"DECKVAULT_DB_POOL_SIZE"`
}

type CacheConfig struct {
	Size       int `toml:"size" env:"DECKVAULT_CACHE_SIZE"`
	TTLSeconds int `toml:"ttl_seconds" env:"DECKVAULT_CACHE_TTL_SECONDS"`
}
