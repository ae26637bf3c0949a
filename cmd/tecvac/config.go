package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/tecvac/internal/model"
)

const (
	defaultSkin       = model.DefaultSkin
	defaultStartRoute = string(model.DefaultRoute)
	defaultUserName   = model.DefaultUserName
	defaultUserTitle  = model.DefaultUserTitle
)

// appConfig is the runtime configuration, from defaults, the config file
// and TECVAC_* environment variables, in increasing priority.
type appConfig struct {
	Skin               string `mapstructure:"skin"`
	StartRoute         string `mapstructure:"start-route"`
	StartCollapsed     bool   `mapstructure:"start-collapsed"`
	UserName           string `mapstructure:"user-name"`
	UserTitle          string `mapstructure:"user-title"`
	IntakeJournal      string `mapstructure:"intake-journal"`
	LogFile            string `mapstructure:"log-file"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	ConfigDir          string `mapstructure:"-"` // skins are looked up here
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "tecvac")

	v := viper.New()
	v.SetEnvPrefix("TECVAC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("start-route", defaultStartRoute)
	v.SetDefault("start-collapsed", false)
	v.SetDefault("user-name", defaultUserName)
	v.SetDefault("user-title", defaultUserTitle)
	v.SetDefault("intake-journal", "")
	v.SetDefault("log-file", "")
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if !strings.HasPrefix(cfg.StartRoute, "/") {
		return cfg, fmt.Errorf("start-route %q must begin with /", cfg.StartRoute)
	}
	cfg.ConfigDir = configDir

	return cfg, nil
}
