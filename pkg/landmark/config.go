package landmark

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
)

// Config is the file form of registry settings.
//
//	log_level = "warn"
//	log_path = "logs/landmarks.log"
//	locale = "fr"
//	navigation_key = "F6"
//	history_size = 32
//	hidden_attributes = ["hidden", "inert"]
type Config struct {
	LogLevel      string `toml:"log_level"`      // debug, info, warn or error
	LogPath       string `toml:"log_path"`       // Log file path; empty logs to stderr only
	Locale        string `toml:"locale"`         // Language of diagnostic messages
	NavigationKey string `toml:"navigation_key"` // Key that moves between landmarks
	HistorySize   int    `toml:"history_size"`   // Dispatched commands kept for tracing

	// HiddenAttributes are boolean attributes that hide an element from
	// the accessibility tree in addition to aria-hidden. Read by HTML hosts.
	HiddenAttributes []string `toml:"hidden_attributes"`

	// UnknownKeys lists file keys that match no setting. Apply logs them
	// once the log destination is configured.
	UnknownKeys []string `toml:"-"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		Locale:        "en",
		NavigationKey: constants.DefaultNavigationKey,
		HistorySize:   dispatch.DefaultHistorySize,

		HiddenAttributes: []string{"hidden"},
	}
}

// LoadConfig reads a TOML config file on top of DefaultConfig and applies
// environment overrides. An empty path loads only defaults and environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("landmark: load config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := constants.LogLevelFromEnv(); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
}

// Apply configures the shared logger from the config.
// Call once at startup, before creating registries.
func (c Config) Apply() {
	if c.LogPath != "" {
		SetLogPath(c.LogPath)
	}
	if c.LogLevel != "" {
		SetRawLogLevel(c.LogLevel)
	}
	if len(c.UnknownKeys) > 0 {
		GetLogger().Warn("Unknown config keys", "keys", c.UnknownKeys)
	}
}

// Options converts the config into registry options.
func (c Config) Options() []Option {
	return []Option{
		WithLocale(c.Locale),
		WithNavigationKey(c.NavigationKey),
		WithHistorySize(c.HistorySize),
	}
}
