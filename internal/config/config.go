package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	ErrInvalidPolicy = errors.New("library.on_select must be submit or populate")
	ErrInvalidStyle  = errors.New("reveal.reasoning_style must be staged or rotating")
)

// LibraryPolicy selects what picking a library entry does.
type LibraryPolicy string

const (
	PolicySubmit   LibraryPolicy = "submit"
	PolicyPopulate LibraryPolicy = "populate"
)

// ReasoningStyle selects the pending indicator variant.
type ReasoningStyle string

const (
	StyleStaged   ReasoningStyle = "staged"
	StyleRotating ReasoningStyle = "rotating"
)

// Config holds all configuration for Plannie
type Config struct {
	Responder ResponderConfig `mapstructure:"responder"`
	Reveal    RevealConfig    `mapstructure:"reveal"`
	Library   LibraryConfig   `mapstructure:"library"`
	Media     MediaConfig     `mapstructure:"media"`
	Log       LogConfig       `mapstructure:"log"`
	UI        UIConfig        `mapstructure:"ui"`
}

// ResponderConfig holds the mock responder settings
type ResponderConfig struct {
	Latency time.Duration `mapstructure:"latency"`
}

// RevealConfig holds reasoning indicator and typewriter settings
type RevealConfig struct {
	TypingDelay    time.Duration  `mapstructure:"typing_delay"`
	ReasoningStyle ReasoningStyle `mapstructure:"reasoning_style"`
	RotateInterval time.Duration  `mapstructure:"rotate_interval"`
	Ellipsis       bool           `mapstructure:"ellipsis"`
}

// LibraryConfig holds recommendation library behaviour
type LibraryConfig struct {
	OnSelect LibraryPolicy `mapstructure:"on_select"`
}

// MediaConfig holds image fetching settings
type MediaConfig struct {
	FetchImages bool          `mapstructure:"fetch_images"`
	CacheDir    string        `mapstructure:"cache_dir"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds terminal settings
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"latency":         "responder.latency",
	"library-policy":  "library.on_select",
	"reasoning-style": "reveal.reasoning_style",
	"log-file":        "log.file",
}

// negatedFlags are boolean flags that switch a default-on key off.
var negatedFlags = map[string]string{
	"no-alt-screen": "ui.alt_screen",
	"no-images":     "media.fetch_images",
}

// Load reads configuration from defaults, an optional file, PLANNIE_* env
// vars and flags, in increasing precedence. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("plannie")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("PLANNIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files and env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &cfg
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	for name, key := range negatedFlags {
		if !flags.Changed(name) {
			continue
		}
		off, err := flags.GetBool(name)
		if err != nil {
			return fmt.Errorf("read flag %s: %w", name, err)
		}
		v.Set(key, !off)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("responder.latency", "1800ms")

	v.SetDefault("reveal.typing_delay", "2ms")
	v.SetDefault("reveal.reasoning_style", string(StyleStaged))
	v.SetDefault("reveal.rotate_interval", "1500ms")
	v.SetDefault("reveal.ellipsis", true)

	v.SetDefault("library.on_select", string(PolicySubmit))

	v.SetDefault("media.fetch_images", true)
	v.SetDefault("media.cache_dir", "")
	v.SetDefault("media.timeout", "15s")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetDefault("ui.alt_screen", true)
}

// Validate checks enumerated values and durations.
func (c *Config) Validate() error {
	switch c.Library.OnSelect {
	case PolicySubmit, PolicyPopulate:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidPolicy, c.Library.OnSelect)
	}
	switch c.Reveal.ReasoningStyle {
	case StyleStaged, StyleRotating:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidStyle, c.Reveal.ReasoningStyle)
	}
	if c.Responder.Latency < 0 {
		return fmt.Errorf("responder.latency must not be negative: %s", c.Responder.Latency)
	}
	if c.Reveal.TypingDelay <= 0 {
		return fmt.Errorf("reveal.typing_delay must be positive: %s", c.Reveal.TypingDelay)
	}
	if c.Reveal.RotateInterval <= 0 {
		return fmt.Errorf("reveal.rotate_interval must be positive: %s", c.Reveal.RotateInterval)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
