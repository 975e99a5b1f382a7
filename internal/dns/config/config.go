// Package config loads the demo server's configuration from the process
// environment, applying defaults and validation the same way the rest of
// this module's ancestry does: koanf loads and merges, validator enforces
// the struct tags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	Log LoggingConfig `koanf:"log" validate:"required"`

	Server ServerConfig `koanf:"server" validate:"required"`
}

type LoggingConfig struct {
	// Level defines the logging level: "debug", "info", "warn", or "error".
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

type ServerConfig struct {
	// IP is the address the UDP socket binds to.
	IP string `koanf:"ip" validate:"required,ip"`

	// Port is the network port the DNS server will bind to.
	Port int `koanf:"port" validate:"required,gte=1,lte=65535"`

	// Threads is the size of the worker pool reading from the shared socket.
	Threads int `koanf:"threads" validate:"required,gte=1"`
}

// DEFAULT_APP_CONFIG defines the default application configuration.
var DEFAULT_APP_CONFIG = AppConfig{
	Env: "prod",
	Log: LoggingConfig{
		Level: "info",
	},
	Server: ServerConfig{
		IP:      "0.0.0.0",
		Port:    8053,
		Threads: 1,
	},
}

// envLoader loads environment variables with the prefix "DNSWIRE_", lower-
// cases keys, strips the prefix and maps "_" to "." so nested struct fields
// (e.g. DNSWIRE_SERVER_PORT) resolve to "server.port". A variable whose
// value is empty or blank is skipped, so the default stays in force.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSWIRE_",
		TransformFunc: func(key, value string) (string, any) {
			value = strings.TrimSpace(value)
			if value == "" {
				return "", nil
			}
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "DNSWIRE_")), "_", ".")
			return key, value
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into k via the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables into an AppConfig, applying defaults
// first and validating the result.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
