// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings are the resolved command line settings.
type settings struct {
	DNSProtocol string
	DNSServer   string
	LogFormat   string
	LogLevel    string
	Timeout     time.Duration
}

// newViper returns a [*viper.Viper] with defaults and ARGCHECK_ environment
// variables, bound to the persistent flags in flags.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("dns.protocol", "system")
	v.SetDefault("dns.server", "8.8.8.8:53")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("timeout", 30*time.Second)

	v.SetEnvPrefix("ARGCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"dns.protocol": "dns-protocol",
		"dns.server":   "dns-server",
		"log.format":   "log-format",
		"log.level":    "log-level",
		"timeout":      "timeout",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// loadSettings reads the optional config file and resolves the settings.
func loadSettings(v *viper.Viper, configFile string) (*settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return &settings{
		DNSProtocol: v.GetString("dns.protocol"),
		DNSServer:   v.GetString("dns.server"),
		LogFormat:   v.GetString("log.format"),
		LogLevel:    v.GetString("log.level"),
		Timeout:     v.GetDuration("timeout"),
	}, nil
}

// newConfig returns the [*argcheck.Config] matching the settings.
func (s *settings) newConfig() *argcheck.Config {
	cfg := argcheck.NewConfig()
	cfg.DNSProtocol = s.DNSProtocol
	cfg.DNSServer = s.DNSServer
	return cfg
}

// newLogger returns a logger writing to w and tagging records with a span ID.
func (s *settings) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, options)
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler).With("spanID", argcheck.NewSpanID()), nil
}
