package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds environment-driven configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Service ServiceConfig `koanf:"service"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     string        `koanf:"cors_origins"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ServiceConfig is reported by the metadata, health and recommend endpoints.
type ServiceConfig struct {
	Name         string `koanf:"name"`
	Version      string `koanf:"version"`
	ModelVersion string `koanf:"model_version"`
}

// ConfigPathEnvVar overrides the YAML file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

// envKeys maps supported environment variables to config keys. Anything not
// listed here is ignored.
var envKeys = map[string]string{
	"TOURISM_ADDR":             "server.addr",
	"TOURISM_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"TOURISM_CORS_ORIGINS":     "server.cors_origins",
	"LOG_LEVEL":                "logging.level",
	"LOG_FORMAT":               "logging.format",
	"LOG_CALLER":               "logging.caller",
	"TOURISM_SERVICE_NAME":     "service.name",
	"TOURISM_VERSION":          "service.version",
	"TOURISM_MODEL_VERSION":    "service.model_version",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     "*",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Service: ServiceConfig{
			Name:         "tourism-recsys",
			Version:      "1.0.0",
			ModelVersion: "v1.0-dummy",
		},
	}
}

// Load layers defaults, an optional YAML file and environment variables, in
// that order of increasing priority.
func Load() (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(name string) string {
	return envKeys[name]
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks the values Load cannot default away.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
