package server

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configures a Run invocation. Addr and ConfigPath are typically set
// from CLI flags; the rest can be supplied either directly or via the YAML
// file at ConfigPath, which is loaded first and then overridden by any
// non-zero fields already set on Config.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":6436".
	Addr string `yaml:"addr"`

	// ConfigPath, if set, is loaded via LoadConfig before Run starts.
	ConfigPath string `yaml:"-"`

	Debug  bool `yaml:"debug"`
	Pretty bool `yaml:"pretty"`

	// PostgresDSN selects PgStore; an empty value falls back to MemStore.
	PostgresDSN string `yaml:"postgres_dsn"`

	// AuthTokens, if non-empty, requires every request to carry a matching
	// "Authorization: Bearer <token>" header.
	AuthTokens []string `yaml:"auth_tokens"`

	// MaxRequestRolls overrides dice.MaxRequestRolls for this server, 0 keeps
	// the package default.
	MaxRequestRolls uint64 `yaml:"max_request_rolls"`

	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// LoadConfig reads a YAML config file at path into a Config. A missing
// ConfigPath is not an error; it returns a zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of override onto the receiver, returning
// the combined Config.
func (cfg Config) merge(override Config) Config {
	out := cfg
	if override.Addr != "" {
		out.Addr = override.Addr
	}
	if override.Debug {
		out.Debug = override.Debug
	}
	if override.Pretty {
		out.Pretty = override.Pretty
	}
	if override.PostgresDSN != "" {
		out.PostgresDSN = override.PostgresDSN
	}
	if len(override.AuthTokens) > 0 {
		out.AuthTokens = override.AuthTokens
	}
	if override.MaxRequestRolls != 0 {
		out.MaxRequestRolls = override.MaxRequestRolls
	}
	if override.ShutdownGrace != 0 {
		out.ShutdownGrace = override.ShutdownGrace
	}
	return out
}
