// Package config defines the server configuration structure.
//
// Configuration is resolved in layers: environment preset defaults, then an
// optional YAML file, then USERHUB_-prefixed environment variables. The
// loading itself lives in internal/infra/confloader; this package only owns
// the structure, presets, validation, and log-safe sanitization.
package config
