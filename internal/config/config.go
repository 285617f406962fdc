package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LADDER_STORE_PATH.
const EnvPrefix = "LADDER"

// Config holds application configuration.
type Config struct {
	Store  StoreConfig
	Server ServerConfig
	Log    LogConfig
}

// StoreConfig selects persistence. An empty Path keeps everything in memory.
type StoreConfig struct {
	Path string
	Seed bool
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string
}

// LogConfig holds slog settings. Format is "text" or "json".
type LogConfig struct {
	Level  string
	Format string
}

// Load reads .env from the working directory, then the optional TOML file,
// then LADDER_* environment overrides.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("store.path", "")
	v.SetDefault("store.seed", true)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ladder"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that does not exist is a user error.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
