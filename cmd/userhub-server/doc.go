// Package main provides the entry point for userhub-server.
//
// The server exposes the UserHub JSON API:
//
//   - HTTP listener, always on
//   - HTTPS listener, when a TLS certificate pair is configured
//   - Prometheus metrics on /metrics
//
// Usage:
//
//	userhub-server [flags]
//	userhub-server --env production --config /path/to/config.yaml
//
// The server loads configuration from the environment preset, an optional
// YAML file and USERHUB_-prefixed environment variables, then starts the
// configured listeners.
package main
