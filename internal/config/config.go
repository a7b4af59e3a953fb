// Package config loads opcalc settings.
//
// Values are resolved in this order, highest first: command line flags,
// environment variables (OPCALC_* and the generic LOG_LEVEL/LOG_FORMAT),
// the optional config file, then defaults. .env files are loaded into the
// environment before anything is read and never override variables that are
// already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leofalp/opcalc/providers/observability/slogobs"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("opcalc: invalid configuration")

// Log backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Config is the resolved configuration of one opcalc run.
type Config struct {
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`     // DEBUG, INFO, WARN or ERROR
	LogFormat  string `mapstructure:"log_format" yaml:"log_format"`   // text or json
	LogBackend string `mapstructure:"log_backend" yaml:"log_backend"` // slog or zap
	Precision  int    `mapstructure:"precision" yaml:"precision"`     // decimals in printed results, -1 for shortest
	Prompt     bool   `mapstructure:"prompt" yaml:"prompt"`           // print the operation menu before each calculation
}

// Options tells [Load] where to look.
type Options struct {
	// ConfigFile is a YAML, TOML or JSON file. When empty, OPCALC_CONFIG is
	// consulted; a missing default file is not an error.
	ConfigFile string
	// EnvFiles are loaded with godotenv. When empty, ./.env is tried.
	EnvFiles []string
	// Flags, when set, override every other source for the flags the user
	// actually passed.
	Flags *pflag.FlagSet
}

var (
	defaults = map[string]any{
		"log_level":   "INFO",
		"log_format":  string(slogobs.FormatText),
		"log_backend": BackendSlog,
		"precision":   -1,
		"prompt":      true,
	}

	// envBindings maps config keys to environment variables, preferred first.
	envBindings = map[string][]string{
		"log_level":   {"OPCALC_LOG_LEVEL", "LOG_LEVEL"},
		"log_format":  {"OPCALC_LOG_FORMAT", "LOG_FORMAT"},
		"log_backend": {"OPCALC_LOG_BACKEND"},
		"precision":   {"OPCALC_PRECISION"},
		"prompt":      {"OPCALC_PROMPT"},
	}

	// flagBindings maps config keys to command line flag names.
	flagBindings = map[string]string{
		"log_level":   "log-level",
		"log_format":  "log-format",
		"log_backend": "log-backend",
		"precision":   "precision",
		"prompt":      "prompt",
	}
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:   "INFO",
		LogFormat:  string(slogobs.FormatText),
		LogBackend: BackendSlog,
		Precision:  -1,
		Prompt:     true,
	}
}

// Load resolves the configuration and validates it.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	if err := bindFlags(v, opts.Flags); err != nil {
		return nil, err
	}

	configFile := opts.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = os.Getenv("OPCALC_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if _, err := os.Stat(configFile); err == nil || explicit {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerations and ranges and normalises case.
func (c *Config) Validate() error {
	if _, ok := slogobs.LookupLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log level %q (want DEBUG, INFO, WARN or ERROR)", ErrInvalid, c.LogLevel)
	}
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))

	format, ok := slogobs.LookupFormat(c.LogFormat)
	if !ok {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	c.LogFormat = format.String()

	c.LogBackend = strings.ToLower(strings.TrimSpace(c.LogBackend))
	if !slices.Contains([]string{BackendSlog, BackendZap}, c.LogBackend) {
		return fmt.Errorf("%w: log backend %q (want slog or zap)", ErrInvalid, c.LogBackend)
	}

	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("%w: precision %d (want -1 to 17)", ErrInvalid, c.Precision)
	}
	return nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for key, name := range flagBindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
