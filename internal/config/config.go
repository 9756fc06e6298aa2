// Package config holds the runtime options of a single invocation.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CONNDIAG_TIMEOUT.
const EnvPrefix = "CONNDIAG"

// Keys match the long flag names.
const (
	KeyTimeout     = "timeout"
	KeyOutput      = "output"
	KeyNoColor     = "no-color"
	KeyInteractive = "interactive"
	KeyExitCode    = "exit-code"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
)

type Config struct {
	// Zero leaves the connect timeout to the operating system.
	Timeout     time.Duration
	Output      string
	NoColor     bool
	Interactive bool
	// ExitCode makes a failed connection exit non-zero.
	ExitCode  bool
	LogLevel  string
	LogFormat string
}

// NewViper returns a viper instance that reads CONNDIAG_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Timeout:     v.GetDuration(KeyTimeout),
		Output:      strings.ToLower(v.GetString(KeyOutput)),
		NoColor:     v.GetBool(KeyNoColor),
		Interactive: v.GetBool(KeyInteractive),
		ExitCode:    v.GetBool(KeyExitCode),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:   strings.ToLower(v.GetString(KeyLogFormat)),
	}

	if cfg.Timeout < 0 {
		return Config{}, errors.Errorf("invalid %s %s: must not be negative", KeyTimeout, cfg.Timeout)
	}
	switch cfg.Output {
	case "text", "json":
	default:
		return Config{}, errors.Errorf("invalid %s %q: must be text or json", KeyOutput, cfg.Output)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, errors.Errorf("invalid %s %q: must be text or json", KeyLogFormat, cfg.LogFormat)
	}
	return cfg, nil
}
