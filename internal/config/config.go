// Package config loads the YAML configuration and applies AUDITREPORT_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full generator configuration.
type Config struct {
	InputDir      string        `yaml:"input_dir"`
	FolderPrefix  string        `yaml:"folder_prefix"`
	OutputDir     string        `yaml:"output_dir"`
	OutputSuffix  string        `yaml:"output_suffix"`
	Logo          string        `yaml:"logo"`
	Timezone      string        `yaml:"timezone"`
	ShowLocations bool          `yaml:"show_locations"`
	History       bool          `yaml:"history"`
	Exports       ExportsConfig `yaml:"exports"`
	Log           LogConfig     `yaml:"log"`
	Serve         ServeConfig   `yaml:"serve"`
}

// ExportsConfig selects the side files written next to each report.
type ExportsConfig struct {
	CSV  bool `yaml:"csv"`
	JSON bool `yaml:"json"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // console | json
}

type ServeConfig struct {
	Listen      string `yaml:"listen"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:     ".",
		FolderPrefix: "audit_",
		OutputDir:    ".",
		OutputSuffix: "_report.html",
		Timezone:     "Local",
		History:      true,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Serve: ServeConfig{
			Listen:      ":8080",
			MaxUploadMB: 64,
		},
	}
}

// Load reads the YAML file at path over DefaultConfig. An empty path skips
// the file. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	str("AUDITREPORT_INPUT_DIR", &c.InputDir)
	str("AUDITREPORT_OUTPUT_DIR", &c.OutputDir)
	str("AUDITREPORT_LOGO", &c.Logo)
	str("AUDITREPORT_TIMEZONE", &c.Timezone)
	str("AUDITREPORT_LOG_LEVEL", &c.Log.Level)
	str("AUDITREPORT_LISTEN", &c.Serve.Listen)
	boolean("AUDITREPORT_SHOW_LOCATIONS", &c.ShowLocations)
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.OutputSuffix == "" {
		return fmt.Errorf("output_suffix is required")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log.level %q (use debug, info, warn or error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log.format %q (use console or json)", c.Log.Format)
	}
	if c.Serve.MaxUploadMB <= 0 {
		return fmt.Errorf("serve.max_upload_mb must be > 0")
	}
	return nil
}

// Location resolves Timezone; "" and "Local" mean the machine's zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 { return int64(c.Serve.MaxUploadMB) * 1024 * 1024 }
