// Package config loads the chddl project configuration.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// ClickHouse holds connection settings for schema dumps.
	ClickHouse struct {
		// DSN is the server address in "host:port" form.
		DSN string `yaml:"dsn,omitempty"`

		// Cluster names the cluster used for distributed deployments.
		Cluster string `yaml:"cluster,omitempty"`
	}

	// Format holds formatting preferences applied by `chddl fmt`.
	Format struct {
		// OneLine renders each statement on a single line.
		OneLine bool `yaml:"one_line,omitempty"`
	}

	// Config is the project configuration for DDL parsing and
	// formatting, usually loaded from chddl.yaml.
	Config struct {
		// ClickHouse contains connection settings for `chddl dump`
		ClickHouse ClickHouse `yaml:"clickhouse"`

		// Format contains formatting preferences
		Format Format `yaml:"format"`

		// Entrypoint is the main schema file parsed by default
		Entrypoint string `yaml:"entrypoint,omitempty"`
	}
)

// Load parses a configuration from YAML. Missing connection settings fall
// back to defaults.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.ClickHouse.DSN == "" {
		cfg.ClickHouse.DSN = consts.DefaultClickHouseDSN
	}
	return &cfg, nil
}

// LoadFile reads and parses the configuration file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	return Load(f)
}
