// Package config defines the server configuration structure.
package config

// Environment names accepted by ForEnvironment.
const (
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Default configuration values.
const (
	DefaultEnv = EnvStaging

	StagingHTTPAddr     = ":3000"
	StagingHTTPSAddr    = ":3001"
	ProductionHTTPAddr  = ":5000"
	ProductionHTTPSAddr = ":5001"

	DefaultDataDir       = ".data"
	DefaultHashingSecret = "thisIsASecret"

	DefaultRateLimit = 0
	DefaultRateBurst = 25

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration (the staging preset).
func Default() *ServerConfig {
	return ForEnvironment(DefaultEnv)
}

// ForEnvironment returns the preset configuration for the named environment.
// Unknown names fall back to the staging preset.
func ForEnvironment(env string) *ServerConfig {
	cfg := &ServerConfig{
		Env: EnvStaging,
		Server: ServerSection{
			HTTP:      HTTPConfig{Addr: StagingHTTPAddr},
			HTTPS:     HTTPSConfig{Addr: StagingHTTPSAddr},
			RateLimit: DefaultRateLimit,
			RateBurst: DefaultRateBurst,
		},
		Storage: StorageSection{
			DataDir: DefaultDataDir,
		},
		Security: SecuritySection{
			HashingSecret: DefaultHashingSecret,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}

	if env == EnvProduction {
		cfg.Env = EnvProduction
		cfg.Server.HTTP.Addr = ProductionHTTPAddr
		cfg.Server.HTTPS.Addr = ProductionHTTPSAddr
	}

	return cfg
}
