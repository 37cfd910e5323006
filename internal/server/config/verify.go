// Package config defines the server configuration structure.
package config

import (
	"errors"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if cfg.Env != EnvStaging && cfg.Env != EnvProduction {
		return errors.New("env must be \"staging\" or \"production\"")
	}
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	return verifySecurity(&cfg.Security)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}

	// TLS is all-or-nothing: a cert without a key (or vice versa) is a
	// misconfiguration, not a plaintext-only deployment.
	if (cfg.HTTPS.TLSCertFile == "") != (cfg.HTTPS.TLSKeyFile == "") {
		return errors.New("server.https requires both tls_cert_file and tls_key_file")
	}
	if cfg.HTTPS.TLSCertFile != "" && cfg.HTTPS.Addr == "" {
		return errors.New("server.https.addr is required when TLS files are set")
	}

	if cfg.RateLimit < 0 {
		return errors.New("server.rate_limit must not be negative")
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return errors.New("server.rate_burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	// Check if data directory exists or can be created
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return errors.New("cannot create data directory: " + err.Error())
	}
	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	if cfg.HashingSecret == "" {
		return errors.New("security.hashing_secret is required")
	}
	return nil
}
