package config

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the boot configuration of the app. Values come from an optional
// YAML file and are overridden by environment variables.
type Config struct {
	// Environment selects the logger flavour (development, production)
	Environment string `env:"COOKBOOK_ENVIRONMENT" env-default:"development" yaml:"environment"`

	Window struct {
		Width  float32 `env:"COOKBOOK_WINDOW_WIDTH" env-default:"380" yaml:"width"`
		Height float32 `env:"COOKBOOK_WINDOW_HEIGHT" env-default:"900" yaml:"height"`
	} `yaml:"window"`

	Grid struct {
		// Columns is used until the user picks another value in settings
		Columns int `env:"COOKBOOK_GRID_COLUMNS" env-default:"3" yaml:"columns"`
	} `yaml:"grid"`

	Servings struct {
		Initial int `env:"COOKBOOK_SERVINGS_INITIAL" env-default:"6" yaml:"initial"`
	} `yaml:"servings"`
}

// Load reads the config file at path. A missing file is not an error:
// defaults and environment variables are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, errors.Wrapf(err, "read config %q", path)
			}
			return &cfg, cfg.validate()
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read config from env")
	}

	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Grid.Columns < MinGridColumns || c.Grid.Columns > MaxGridColumns {
		return errors.Errorf("grid columns must be in [%d, %d], got %d", MinGridColumns, MaxGridColumns, c.Grid.Columns)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}
