// Package config loads application configuration: shipped defaults, an
// optional YAML file, then SPENDVIEW_* environment overrides, in ascending
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `spendview init`.
const FileName = "spendview.yaml"

// Config is the top-level spendview.yaml configuration.
type Config struct {
	Scan     ScanConfig     `yaml:"scan" mapstructure:"scan"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy" mapstructure:"taxonomy"`
}

// ScanConfig controls statement discovery.
type ScanConfig struct {
	Dir  string `yaml:"dir" mapstructure:"dir"`   // empty = ~/Downloads
	Days int    `yaml:"days" mapstructure:"days"` // lookback window
}

// TaxonomyConfig points at a replacement category taxonomy.
type TaxonomyConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // empty = built-in taxonomy
}

// Load reads configuration. The file is looked up via SPENDVIEW_CONFIG, then
// ~/.config/spendview/spendview.yaml, then the working directory; a missing
// file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("scan.dir", "")
	v.SetDefault("scan.days", 30)
	v.SetDefault("taxonomy.path", "")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("SPENDVIEW_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "spendview"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("spendview")
	}

	v.SetEnvPrefix("SPENDVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with the shipped defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{Dir: "", Days: 30},
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
