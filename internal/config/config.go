// Package config provides YAML configuration loading and validation, plus
// .env loading for the RPC endpoint fallback. The config file is optional:
// the tool runs with built-in defaults when no file is present.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultRPC is the built-in placeholder endpoint used when neither the
// --rpc flag, the config file, nor the RPC_URL environment variable
// provides one.
const DefaultRPC = "https://mainnet.infura.io/v3/your_api_key"

// DefaultTimeout is the fixed per-request timeout applied unless the config
// file or --timeout overrides it.
const DefaultTimeout = 20 * time.Second

// Config is the root structure loaded from YAML.
type Config struct {
	RPC        string          `yaml:"rpc"`         // default endpoint (supports ${VAR} expansion)
	Timeout    time.Duration   `yaml:"timeout"`     // per-request timeout
	MaxRetries int             `yaml:"max_retries"` // additional attempts per call (0 = none)
	Networks   []NetworkConfig `yaml:"networks"`    // extra chains layered over the built-in tables
}

// NetworkConfig declares one additional chain for name/explorer resolution.
type NetworkConfig struct {
	ChainID  uint64 `yaml:"chainId"`
	Name     string `yaml:"name"`
	Explorer string `yaml:"explorer,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Timeout:    DefaultTimeout,
		MaxRetries: 0,
	}
}

// Validate checks the loaded configuration and applies defaults where a
// field was left unset.
func (c *Config) Validate() error {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0")
	}

	if c.RPC != "" {
		u, err := url.Parse(c.RPC)
		if err != nil {
			return fmt.Errorf("invalid rpc url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid rpc url scheme %q (expected http or https)", u.Scheme)
		}
	}

	for _, n := range c.Networks {
		if n.ChainID == 0 {
			return fmt.Errorf("network %q: chainId is required", n.Name)
		}
		if n.Name == "" {
			return fmt.Errorf("network %d: name is required", n.ChainID)
		}
	}

	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// references against the environment. A missing file at the default path is
// not an error; an explicitly requested file that cannot be read is.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnv reads a .env file from the current working directory into the
// process environment. Missing files are fine; the system environment is
// used as-is. Called before Load so ${VAR} expansion and the RPC_URL
// fallback both see the file's values.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveRPC applies the endpoint precedence: --rpc flag, config file,
// RPC_URL environment variable, built-in placeholder.
func (c *Config) ResolveRPC(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.RPC != "" {
		return c.RPC
	}
	if env := os.Getenv("RPC_URL"); env != "" {
		return env
	}
	return DefaultRPC
}
