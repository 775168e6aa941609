// Package config loads phasor settings from YAML files.
package config

import (
	"os"

	"github.com/ukaji3/phasor-go/pkg/phasor"
	"github.com/ukaji3/phasor-go/pkg/phasor/diagram"
	"github.com/ukaji3/phasor-go/pkg/phasor/parser"
	"github.com/ukaji3/phasor-go/pkg/phasor/render"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Style   render.Style  `yaml:"style"`
	Server  ServerConfig  `yaml:"server"`
}

// ExtractConfig controls the extraction pipeline.
type ExtractConfig struct {
	InvalidAngles string `yaml:"invalid_angles"` // fail | degrade
	PreviewRows   int    `yaml:"preview_rows"`
	MaxBytes      int64  `yaml:"max_bytes"`
}

// ServerConfig controls the HTTP upload server.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Extract.InvalidAngles == "" {
		c.Extract.InvalidAngles = string(diagram.PolicyFail)
	}
	if c.Extract.PreviewRows == 0 {
		c.Extract.PreviewRows = parser.PreviewRows
	}
	if c.Extract.MaxBytes <= 0 {
		c.Extract.MaxBytes = phasor.DefaultMaxBytes
	}
	c.Style = c.Style.WithDefaults()
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = c.Extract.MaxBytes
	}
}

// Policy returns the configured invalid angle policy.
func (c *Config) Policy() (diagram.InvalidAnglePolicy, error) {
	return diagram.ParsePolicy(c.Extract.InvalidAngles)
}

// Options returns extraction options for this configuration.
func (c *Config) Options() (phasor.Options, error) {
	policy, err := c.Policy()
	if err != nil {
		return phasor.Options{}, err
	}
	return phasor.Options{
		Policy:      policy,
		PreviewRows: c.Extract.PreviewRows,
		MaxBytes:    c.Extract.MaxBytes,
	}, nil
}
