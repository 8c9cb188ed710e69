package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Nav      NavConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for session persistence.
type DatabaseConfig struct {
	Path string
}

// NavConfig holds transition-sequencing tunables, in milliseconds.
type NavConfig struct {
	ReplaceDelayMS int `mapstructure:"replace_delay_ms"`
	ReleaseDelayMS int `mapstructure:"release_delay_ms"`
}

// ReplaceDelay is the pause between dismissing a modal and presenting its
// replacement.
func (n NavConfig) ReplaceDelay() time.Duration {
	return time.Duration(n.ReplaceDelayMS) * time.Millisecond
}

// ReleaseDelay is how long a dismissed subtree stays alive for its close
// animation.
func (n NavConfig) ReleaseDelay() time.Duration {
	return time.Duration(n.ReleaseDelayMS) * time.Millisecond
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AppName string `mapstructure:"app_name"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// HELMSMAN_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "helmsman", "sessions.db"))
	v.SetDefault("nav.replace_delay_ms", 150)
	v.SetDefault("nav.release_delay_ms", 500)
	v.SetDefault("ui.app_name", "Helmsman")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HELMSMAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "helmsman"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HELMSMAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
