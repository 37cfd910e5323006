// Package config defines the server configuration structure.
package config

// ServerConfig is the root configuration for userhub-server.
type ServerConfig struct {
	// Env names the deployment environment ("staging" or "production").
	Env string `koanf:"env"`

	Server   ServerSection   `koanf:"server"`
	Storage  StorageSection  `koanf:"storage"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP  HTTPConfig  `koanf:"http"`
	HTTPS HTTPSConfig `koanf:"https"`

	// RateLimit caps requests per second per listener. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the burst allowance when rate limiting is enabled.
	RateBurst int `koanf:"rate_burst"`
}

// HTTPConfig configures the plaintext HTTP listener.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// HTTPSConfig configures the TLS listener. The listener is started only
// when both the certificate and key files are set.
type HTTPSConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// StorageSection configures record storage.
type StorageSection struct {
	DataDir string `koanf:"data_dir"`
}

// SecuritySection configures security settings.
type SecuritySection struct {
	// HashingSecret keys the password hash. Changing it invalidates every
	// stored password.
	HashingSecret string `koanf:"hashing_secret"`

	// EncryptionPassphrase, when set, seals stored records at rest.
	EncryptionPassphrase string `koanf:"encryption_passphrase"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
