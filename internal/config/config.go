package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Environment string       `mapstructure:"environment"`
	Poller      PollerConfig `mapstructure:"poller"`
}

// PollerConfig tunes the two periodic re-evaluations. Defaults match the
// product behavior: rhythm every second, display ages every minute.
type PollerConfig struct {
	RhythmTick  time.Duration `mapstructure:"rhythm_tick"`
	DisplayTick time.Duration `mapstructure:"display_tick"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment override, e.g. poller.rhythm_tick -> POLLER_RHYTHM_TICK.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("environment", "development")
	viper.SetDefault("poller.rhythm_tick", "1s")
	viper.SetDefault("poller.display_tick", "60s")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry the day.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
