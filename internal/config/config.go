package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the ifs command.
type Config struct {
	Render RenderConfig
	Output OutputConfig
	Random RandomConfig
}

// RenderConfig holds rasterization settings.
type RenderConfig struct {
	Width       int
	Height      int
	Points      int
	BurnIn      int `mapstructure:"burn_in"`
	Scale       float64
	Supersample int
	Fit         bool
	Margin      float64
	Background  string
}

// OutputConfig holds settings for written images.
type OutputConfig struct {
	Dir string
}

// RandomConfig holds settings for the random source. A zero seed means the
// runtime's entropy source is used.
type RandomConfig struct {
	Seed uint64
}

// Load reads configuration from file and env. Env var overrides use prefix IFS_,
// e.g. IFS_RENDER_WIDTH.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("render.width", 1000)
	v.SetDefault("render.height", 1000)
	v.SetDefault("render.points", 1_000_000)
	v.SetDefault("render.burn_in", 20)
	v.SetDefault("render.scale", 1.0)
	v.SetDefault("render.supersample", 1)
	v.SetDefault("render.fit", false)
	v.SetDefault("render.margin", 0.05)
	v.SetDefault("render.background", "#000000")
	v.SetDefault("output.dir", "./output")
	v.SetDefault("random.seed", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("IFS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ifs"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("IFS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicitly requested or
		// broken one isn't.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the configuration can be used for rendering.
func (c Config) Validate() error {
	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", r.Width, r.Height)
	case r.Points < 0:
		return fmt.Errorf("invalid number of points %d", r.Points)
	case r.BurnIn < 0:
		return fmt.Errorf("invalid burn-in %d", r.BurnIn)
	case r.Supersample < 1:
		return fmt.Errorf("invalid supersampling factor %d", r.Supersample)
	case r.Margin < 0 || r.Margin >= 0.5:
		return fmt.Errorf("invalid margin %g", r.Margin)
	}
	return nil
}
