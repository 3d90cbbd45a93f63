package config

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	defaultEnv    = "dev"
	defaultDBPath = "./dev.db"
	defaultAddr   = ":8080"
)

// Config holds application configuration sourced from an optional config.yaml
// and PREC_* environment variables. Environment variables win.
type Config struct {
	Env            string `mapstructure:"env"`
	Addr           string `mapstructure:"addr"`
	DBPath         string `mapstructure:"db_path"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

// Load reads configuration. The config file is optional; production can rely
// on environment variables only.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("env", defaultEnv)
	v.SetDefault("addr", defaultAddr)
	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("metrics_enabled", false)

	v.SetEnvPrefix("PREC")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDev reports whether the application runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}
