package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/termselect/internal/app"
	"github.com/atomicstack/termselect/internal/ui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "TERMSELECT_"

const (
	keySelection    = "selection"
	keyHelp         = "key-help"
	keyPollInterval = "poll-interval"
	keyWidth        = "width"
	keyTrace        = "trace"
	keyLogFile      = "log-file"
	keyConfig       = "config"
)

var keys = []string{keySelection, keyHelp, keyPollInterval, keyWidth, keyTrace, keyLogFile, keyConfig}

// RegisterFlags adds the application's flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keySelection, ui.BackgroundFilled.String(), "how the selected row is marked: background or arrowed")
	fs.Bool(keyHelp, false, "show a key hint line below the menu")
	fs.Duration(keyPollInterval, ui.DefaultPollInterval, "delay between key polls")
	fs.Int(keyWidth, 0, "viewport width in cells (0 uses terminal width)")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.String(keyConfig, "", "path to a YAML, TOML or JSON config file")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("termselect", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, args, environ)
}

// FromFlags resolves configuration from an already parsed flag set carrying
// the flags from RegisterFlags. Explicit flags win over TERMSELECT_*
// environment variables, which win over the config file, which wins over
// flag defaults.
func FromFlags(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	for _, key := range keys {
		flag := fs.Lookup(key)
		if flag == nil {
			return Config{}, fmt.Errorf("flag --%s is not registered", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return Config{}, fmt.Errorf("bind flag --%s: %w", key, err)
		}
		if flag.Changed {
			continue
		}
		raw, ok := env[envName(key)]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		value, err := parseValue(flag.Value.Type(), raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envName(key), err)
		}
		v.Set(key, value)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		App: app.Config{
			Selection:    v.GetString(keySelection),
			ShowHelp:     v.GetBool(keyHelp),
			PollInterval: v.GetDuration(keyPollInterval),
			Width:        v.GetInt(keyWidth),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: v.ConfigFileUsed(),
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		"selection":    cfg.App.Selection,
		"keyHelp":      strconv.FormatBool(cfg.App.ShowHelp),
		"pollInterval": cfg.App.PollInterval.String(),
		"width":        strconv.Itoa(cfg.App.Width),
		"trace":        strconv.FormatBool(cfg.Logging.Trace),
		"logFile":      cfg.Logging.FilePath,
		"config":       cfg.File,
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func parseValue(kind, raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case "bool":
		return strconv.ParseBool(raw)
	case "int":
		return strconv.Atoi(raw)
	case "duration":
		return time.ParseDuration(raw)
	default:
		return raw, nil
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
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
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive (got %s)", cfg.App.PollInterval)
	}
	if _, err := cfg.App.Options(); err != nil {
		return err
	}
	return nil
}
