package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// ExportPath is the activities CSV to analyze when --file is not given.
	ExportPath string `mapstructure:"export_path" yaml:"export_path"`
	// BarWidth is the width of text bar charts in columns.
	BarWidth int `mapstructure:"bar_width" yaml:"bar_width"`
	// DistanceUnit is the unit label shown next to distances.
	DistanceUnit string `mapstructure:"distance_unit" yaml:"distance_unit"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ExportPath:   "activities.csv",
		BarWidth:     40,
		DistanceUnit: "km",
	}
}

// Load reads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. When cfgFile is empty the
// file is looked up at ~/.strava-insights/config.yaml and is optional.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STRAVA_INSIGHTS")
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("export_path", defaults.ExportPath)
	v.SetDefault("bar_width", defaults.BarWidth)
	v.SetDefault("distance_unit", defaults.DistanceUnit)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, ErrNoConfig
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	if cfg.ExportPath == "" {
		cfg.ExportPath = defaults.ExportPath
	}
	if cfg.BarWidth == 0 {
		cfg.BarWidth = defaults.BarWidth
	}
	if cfg.DistanceUnit == "" {
		cfg.DistanceUnit = defaults.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to cfgFile, or to
// ~/.strava-insights/config.yaml when cfgFile is empty.
func Save(cfg *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yaml")

	// Don't overwrite an existing config
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	example := DefaultConfig()
	return Save(&example, "")
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.ExportPath == "" {
		return errors.New("export_path is required - point it at your activities.csv export")
	}
	if c.BarWidth < 10 || c.BarWidth > 120 {
		return fmt.Errorf("bar_width must be between 10 and 120, got %d", c.BarWidth)
	}
	if c.DistanceUnit != "km" && c.DistanceUnit != "mi" {
		return fmt.Errorf("distance_unit must be \"km\" or \"mi\", got %q", c.DistanceUnit)
	}
	return nil
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".strava-insights"), nil
}
