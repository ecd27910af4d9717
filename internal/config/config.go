package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadConfig.
const FileName = ".ctestdash.yaml"

// Constants for default values.
const (
	DefaultInput     = "Test.xml"
	DefaultOutputDir = "."
	DefaultFormat    = "auto"
	DefaultTheme     = "default"
)

// AppConfig represents the settings read from .ctestdash.yaml.
type AppConfig struct {
	Input        string  `yaml:"input"`
	OutputDir    string  `yaml:"output_dir"`
	Aggregate    string  `yaml:"aggregate"`
	Format       string  `yaml:"format"`
	Theme        string  `yaml:"theme"`
	UnknownLabel string  `yaml:"unknown_label"`
	LabelSuffix  *string `yaml:"label_suffix"` // nil keeps the default; "" disables stripping
	Verbose      bool    `yaml:"verbose"`
	NoColor      bool    `yaml:"no_color"`

	// Path is the file the settings came from, empty for defaults.
	Path string `yaml:"-"`

	// LookupErr records a non-fatal failure to probe the user config
	// directory. Settings fall back to defaults when it is set.
	LookupErr error `yaml:"-"`
}

// LoadConfig reads the config file if one exists. A missing file yields
// defaults; an unreadable or malformed one is an error.
func LoadConfig() (*AppConfig, error) {
	path, lookupErr := getConfigPath()
	if path == "" {
		return &AppConfig{LookupErr: lookupErr}, nil
	}
	return LoadFile(path)
}

// LoadFile reads settings from an explicit path.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	return &cfg, nil
}

// getConfigPath checks the local directory first, then the user config
// directory. Returns "" when neither has a config file, along with any
// stat error other than not-exist.
func getConfigPath() (string, error) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}

	configHome, err := os.UserConfigDir()
	// "/" is what some sandboxes report; never look for config at the root.
	if err != nil || configHome == "" || configHome == "/" {
		return "", nil
	}
	xdgPath := filepath.Join(configHome, "ctestdash", FileName)
	_, err = os.Stat(xdgPath)
	switch {
	case err == nil:
		return xdgPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("stat %s: %w", xdgPath, err)
	}
}
