// Package config holds the names of the external tools the scaffolder drives and a few run options.
// Values come from built-in defaults, optionally overridden by a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type (
	Config struct {
		PackageManager string `toml:"package_manager" yaml:"package_manager"`
		ExecRunner     string `toml:"exec_runner" yaml:"exec_runner"`
		ScaffoldTool   string `toml:"scaffold_tool" yaml:"scaffold_tool"`
		Template       string `toml:"template" yaml:"template"`
		RegistryURL    string `toml:"registry_url" yaml:"registry_url"`
		TimeoutSeconds int    `toml:"timeout_seconds" yaml:"timeout_seconds"`
		CheckVersions  bool   `toml:"check_versions" yaml:"check_versions"`
	}
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

func Default() Config {
	return Config{
		PackageManager: "npm",
		ExecRunner:     "npx",
		ScaffoldTool:   "vite",
		Template:       "react",
		RegistryURL:    "https://registry.npmjs.org",
		TimeoutSeconds: 5,
	}
}

// Load reads path on top of [Default]. Keys missing from the file keep their default values.
// Non-nil returned error wraps [ErrInvalidConfig].
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("%w: failed to read config file %q: %s", ErrInvalidConfig, path, err.Error())
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(contents, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(contents, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config file extension %q, want .toml, .yaml or .yml", ErrInvalidConfig, ext)
	}

	if err != nil {
		return cfg, fmt.Errorf("%w: failed to decode %q: %s", ErrInvalidConfig, path, err.Error())
	}

	return cfg, cfg.Validate()
}

// Non-nil returned error wraps [ErrInvalidConfig].
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"package_manager", c.PackageManager},
		{"exec_runner", c.ExecRunner},
		{"scaffold_tool", c.ScaffoldTool},
		{"template", c.Template},
		{"registry_url", c.RegistryURL},
	}

	var errs []error

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, f.name))
		}
	}

	if c.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeout_seconds must be positive, got %d", ErrInvalidConfig, c.TimeoutSeconds))
	}

	return errors.Join(errs...)
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
