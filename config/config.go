// Package config loads igcompare settings from built-in defaults and
// IGCOMPARE_* environment variables. There is no configuration file; command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"igcompare/core"
)

const EnvPrefix = "IGCOMPARE_"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	OrgFilter    OrgFilterConfig    `koanf:"orgfilter"`
	Presentation PresentationConfig `koanf:"presentation"`
	Limits       LimitsConfig       `koanf:"limits"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

type OrgFilterConfig struct {
	Hints            []string `koanf:"hints"`
	ExcludeByDefault bool     `koanf:"exclude_by_default"`
}

type PresentationConfig struct {
	Locale string `koanf:"locale"`
}

type LimitsConfig struct {
	// MaxInputChars caps each pasted list, counted in characters.
	MaxInputChars int `koanf:"max_input_chars"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.addr":                  "127.0.0.1:5555",
		"log.verbosity":                0,
		"orgfilter.hints":              append([]string(nil), core.DefaultOrgHints...),
		"orgfilter.exclude_by_default": false,
		"presentation.locale":          "en",
		"limits.max_input_chars":       2000000,
	}
}

// envKey maps IGCOMPARE_ORGFILTER_EXCLUDE_BY_DEFAULT to orgfilter.exclude_by_default.
// Only the first underscore after the prefix separates the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load reads defaults then the environment and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}

	if _, err := language.Parse(c.Presentation.Locale); err != nil {
		return fmt.Errorf("%w: presentation.locale %q: %v", ErrInvalidConfig, c.Presentation.Locale, err)
	}

	if c.Limits.MaxInputChars <= 0 {
		return fmt.Errorf("%w: limits.max_input_chars must be positive", ErrInvalidConfig)
	}

	if c.Log.Verbosity < 0 {
		return fmt.Errorf("%w: log.verbosity must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Locale returns the parsed presentation locale. Validate guarantees it parses.
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.Presentation.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// OrgFilter builds the filter from the configured hints.
func (c *Config) Filter() *core.OrgFilter {
	return core.NewOrgFilter(c.OrgFilter.Hints)
}
