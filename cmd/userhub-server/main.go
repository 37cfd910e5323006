// Package main provides the entry point for userhub-server.
//
// userhub-server is the UserHub API process: a JSON HTTP(S) service for
// user account and authentication token management backed by per-record
// file storage.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/userhub-go/internal/core/service"
	"github.com/yndnr/userhub-go/internal/infra/buildinfo"
	"github.com/yndnr/userhub-go/internal/infra/confloader"
	"github.com/yndnr/userhub-go/internal/infra/shutdown"
	"github.com/yndnr/userhub-go/internal/server/config"
	"github.com/yndnr/userhub-go/internal/server/httpserver"
	"github.com/yndnr/userhub-go/internal/storage/filestore"
	"github.com/yndnr/userhub-go/internal/telemetry/logger"
	"github.com/yndnr/userhub-go/internal/telemetry/metric"
)

const shutdownTimeout = 30 * time.Second

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newApp creates the CLI application.
func newApp() *cli.App {
	return &cli.App{
		Name:    "userhub-server",
		Usage:   "UserHub API server",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Environment preset: staging, production",
				EnvVars: []string{"USERHUB_ENV"},
				Value:   config.EnvStaging,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "http-addr",
				Usage: "HTTP listen address (overrides config)",
			},
			&cli.StringFlag{
				Name:  "https-addr",
				Usage: "HTTPS listen address (overrides config)",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Data directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (overrides config)",
			},
		},
		Before: func(c *cli.Context) error {
			// Local .env files are optional; absence is not an error.
			_ = godotenv.Load()
			return nil
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	configFile := c.String("config")

	cfg, err := confloader.LoadServerConfig(c.String("env"), configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(c, cfg)

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting userhub-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"env", cfg.Env,
		"config", configFile)
	log.Debug("resolved configuration", "config", config.Sanitize(cfg))

	metrics := metric.NewRegistry()

	store, err := initStore(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	users := service.NewUserService(store, cfg.Security.HashingSecret, metrics)
	tokens := service.NewTokenService(store, users, metrics)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		UserService:  users,
		TokenService: tokens,
		Logger:       log,
		Metrics:      metrics,
		RateLimit:    cfg.Server.RateLimit,
		RateBurst:    cfg.Server.RateBurst,
	})

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)

	// HTTP listener is always on.
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})
	go serve(log, shutdownHandler, "http", cfg.Server.HTTP.Addr, httpServer.ListenAndServe)

	// HTTPS listener requires a certificate pair.
	if cfg.Server.HTTPS.TLSCertFile != "" && cfg.Server.HTTPS.TLSKeyFile != "" {
		httpsServer := httpserver.New(cfg.Server.HTTPS.Addr, router)
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down HTTPS server")
			return httpsServer.Shutdown(ctx)
		})
		go serve(log, shutdownHandler, "https", cfg.Server.HTTPS.Addr, func() error {
			return httpsServer.ListenAndServeTLS(cfg.Server.HTTPS.TLSCertFile, cfg.Server.HTTPS.TLSKeyFile)
		})
	} else {
		log.Info("HTTPS listener disabled, no TLS certificate configured")
	}

	if configFile != "" {
		watcher, err := watchConfig(c.String("env"), configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// applyFlagOverrides lets command-line flags win over file and env config.
func applyFlagOverrides(c *cli.Context, cfg *config.ServerConfig) {
	if addr := c.String("http-addr"); addr != "" {
		cfg.Server.HTTP.Addr = addr
	}
	if addr := c.String("https-addr"); addr != "" {
		cfg.Server.HTTPS.Addr = addr
	}
	if dir := c.String("data-dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// initStore builds the file store, sealed at rest when an encryption
// passphrase is configured.
func initStore(cfg *config.ServerConfig) (*filestore.Store, error) {
	storeCfg := filestore.Config{
		BaseDir:     cfg.Storage.DataDir,
		Collections: []string{service.CollectionUsers, service.CollectionTokens},
	}

	if cfg.Security.EncryptionPassphrase != "" {
		cipher, err := filestore.NewCipher(cfg.Security.EncryptionPassphrase)
		if err != nil {
			return nil, err
		}
		storeCfg.Cipher = cipher
	}

	return filestore.New(storeCfg)
}

// serve runs one listener and triggers process shutdown if it fails.
func serve(log logger.Logger, h *shutdown.Handler, scheme, addr string, listen func() error) {
	log.Info("listener started", "scheme", scheme, "addr", addr)

	if err := listen(); err != nil && err != http.ErrServerClosed {
		log.Error("listener failed", "scheme", scheme, "addr", addr, "error", err)
		h.Trigger()
	}
}

// watchConfig reloads the log level when the configuration file changes.
// Listener addresses and storage settings require a restart.
func watchConfig(envName, configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(log)))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := confloader.LoadServerConfig(envName, path)
		if err != nil {
			log.Warn("ignoring invalid config change", "path", path, "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			log.Info("log level changed", "level", cfg.Log.Level)
			logger.SetLevel(cfg.Log.Level)
		}
	})
	watcher.StartAsync()

	return watcher, nil
}
