package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Nameserver is either a literal "host[:port]" address or a path to a
	// resolv.conf-style file to read the first nameserver line from.
	Nameserver string `koanf:"nameserver" validate:"required,host_port"`

	// TimeoutUS is the per-attempt read timeout in microseconds.
	TimeoutUS uint64 `koanf:"timeout_us" validate:"required,gt=0"`

	// Retry is the number of send attempts before giving up.
	Retry int `koanf:"retry" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// DEFAULT_APP_CONFIG defines the default application configuration settings
// for the DNS stub client.
var DEFAULT_APP_CONFIG = AppConfig{
	Nameserver: "/etc/resolv.conf",
	TimeoutUS:  3_000_000,
	Retry:      3,
	Env:        "prod",
	LogLevel:   "info",
}

// validHostPort validates that the field, if it looks like a "host:port"
// pair, carries a numeric IP and a well-formed port. Values that don't
// contain a colon are treated as file paths and pass through unchecked.
func validHostPort(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	ip, port, err := net.SplitHostPort(addr)
	if err != nil {
		// not host:port shaped; treat as a resolv.conf path, validated later.
		return true
	}
	if net.ParseIP(ip) == nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0 && portNum < 65536
}

// envLoader loads environment variables prefixed "DNSQ_" into the koanf
// instance, lower-casing keys and stripping the prefix.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSQ_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DNSQ_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider and DEFAULT_APP_CONFIG.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "host_port" validation tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("host_port", validHostPort)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
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
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
