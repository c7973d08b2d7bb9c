package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultUpdateInterval = 2 * time.Second
	defaultListenAddr     = "127.0.0.1:8490"
)

// cliConfig holds dashboard configuration. Every field can come from the
// config file or an NTNDASH_* environment variable; flags override both.
type cliConfig struct {
	UpdateInterval time.Duration `mapstructure:"update-interval"`
	StateDir       string        `mapstructure:"state-dir"`
	ListenAddr     string        `mapstructure:"listen-addr"`
	PresetsFile    string        `mapstructure:"presets-file"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "ntndash")

	v := viper.New()
	v.SetEnvPrefix("NTNDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("update-interval", defaultUpdateInterval)
	v.SetDefault("state-dir", filepath.Join(home, ".local", "state", "ntndash"))
	v.SetDefault("listen-addr", defaultListenAddr)
	v.SetDefault("presets-file", filepath.Join(configDir, "presets.yml"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
