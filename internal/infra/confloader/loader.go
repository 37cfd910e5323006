// Package confloader provides configuration loading mechanism.
package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yndnr/userhub-go/internal/server/config"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "USERHUB_"

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges all configured sources and unmarshals them into target.
// Later sources override earlier ones:
//  1. Configuration file (YAML), when set
//  2. Environment variables
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.LoadEnv(); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// LoadFile loads configuration from a YAML file.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}
	return nil
}

// envKeyAliases maps the dotted form of multi-word keys back to their
// koanf names. The env transformer cannot tell a section separator from
// an underscore inside a key name, so every multi-word key is listed.
var envKeyAliases = map[string]string{
	"server.rate.limit":              "server.rate_limit",
	"server.rate.burst":              "server.rate_burst",
	"server.https.tls.cert.file":     "server.https.tls_cert_file",
	"server.https.tls.key.file":      "server.https.tls_key_file",
	"storage.data.dir":               "storage.data_dir",
	"security.hashing.secret":        "security.hashing_secret",
	"security.encryption.passphrase": "security.encryption_passphrase",
}

// LoadEnv loads configuration from environment variables.
// Variables use the format USERHUB_SECTION_KEY (uppercase, underscores).
// Example: USERHUB_SERVER_HTTP_ADDR=:8080
func (l *Loader) LoadEnv() error {
	// USERHUB_SERVER_HTTP_ADDR -> server.http.addr
	// USERHUB_STORAGE_DATA_DIR -> storage.data_dir
	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", ".")
		if alias, ok := envKeyAliases[s]; ok {
			return alias
		}
		return s
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", envTransformer), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// GetString returns a string value from the loaded configuration.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// LoadServerConfig resolves the full server configuration.
//
// The environment preset supplies defaults, the optional YAML file at
// filePath overrides them, and USERHUB_-prefixed environment variables
// override both. The env name itself may come from any layer; presets
// are re-resolved when a later layer changes it.
func LoadServerConfig(envName, filePath string) (*config.ServerConfig, error) {
	loader := NewLoader(WithConfigFile(filePath))

	cfg := config.ForEnvironment(envName)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// A file or env var may select a different environment than the CLI
	// did. Rebuild on the right preset and merge again so unset listener
	// addresses follow the chosen environment.
	if cfg.Env != envName {
		cfg = config.ForEnvironment(cfg.Env)
		if err := NewLoader(WithConfigFile(filePath)).Load(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
