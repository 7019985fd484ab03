// Package config resolves runtime configuration from flags, environment
// variables, and an optional config file, in that order of precedence.
// Viper carries the file and environment layers; the flag defaults are
// seeded from the resolved viper values so -help shows effective ones.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/atomicstack/multipage-hmi/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix       = "MULTIPAGE_HMI"
	configName      = "multipage-hmi"
	defaultInterval = 500 * time.Millisecond
)

// Load parses configuration from CLI arguments, environment variables,
// and an optional multipage-hmi.yaml in the working directory.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], ".")
}

// LoadArgs allows tests to supply specific args and a config search dir.
func LoadArgs(args []string, configDir string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("manifest", "")
	v.SetDefault("tick", defaultInterval)
	v.SetDefault("trace", false)
	v.SetDefault("log-file", "")

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	fs := flag.NewFlagSet(configName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	manifestPath := fs.String("manifest", v.GetString("manifest"), "path to the page tree manifest (empty uses the built-in demo tree)")
	tick := fs.Duration("tick", v.GetDuration("tick"), "page update interval, drives page lifetimes")
	trace := fs.Bool("trace", v.GetBool("trace"), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", v.GetString("log-file"), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *tick <= 0 {
		return Config{}, fmt.Errorf("tick must be positive (got %v)", *tick)
	}

	cfg := Config{
		App: app.Config{
			ManifestPath: *manifestPath,
			TickInterval: *tick,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"manifest": *manifestPath,
			"tick":     tick.String(),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.ManifestPath != "" {
		if _, err := os.Stat(cfg.App.ManifestPath); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}
	return nil
}
