// Package config loads client settings from an optional YAML file.
// Command-line flags override anything set here.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cqlgo/core"
)

const defaultFileName = ".cqlgo.yaml"

type SSL struct {
	Enabled bool   `yaml:"enabled"`
	CACert  string `yaml:"ca_cert"`
	Verify  bool   `yaml:"verify"`
}

type Config struct {
	Hosts        []string `yaml:"hosts"`
	Port         int      `yaml:"port"`
	Username     string   `yaml:"username"`
	Keyspace     string   `yaml:"keyspace"`
	OutputFormat string   `yaml:"output_format"`
	HistoryFile  string   `yaml:"history_file"`
	SSL          SSL      `yaml:"ssl"`
}

func Default() *Config {
	return &Config{
		Hosts:        []string{"127.0.0.1"},
		Port:         9042,
		OutputFormat: "table",
	}
}

// DefaultPath returns ~/.cqlgo.yaml, or "" when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads the file at path on top of the defaults. A missing file is
// not an error; a file that fails to parse is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, core.WrapError(core.ErrConfig, err, "read config %q", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, core.WrapError(core.ErrConfig, err, "parse config %q", path)
	}
	return cfg, nil
}
