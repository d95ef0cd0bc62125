package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	FPS           int
	Theme         string
	ReducedMotion bool `mapstructure:"reduced_motion"`
	Mouse         bool
}

// Default returns the configuration used when no file or env override exists.
func Default() Config {
	return Config{
		FPS:           30,
		Theme:         "dark",
		ReducedMotion: false,
		Mouse:         true,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix MOTIONCAT_.
// A missing config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("fps", def.FPS)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("reduced_motion", def.ReducedMotion)
	v.SetDefault("mouse", def.Mouse)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MOTIONCAT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "motioncat"))
		}
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "motioncat"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MOTIONCAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// normalize clamps values into their supported ranges.
func (c *Config) normalize() {
	if c.FPS < 8 {
		c.FPS = 8
	}
	if c.FPS > 120 {
		c.FPS = 120
	}
	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = "dark"
	}
}
