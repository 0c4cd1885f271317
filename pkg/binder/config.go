package binder

import (
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Config holds environment driven binder settings.
type Config struct {
	MaxMemory   int64  `env:"BINDER_MAX_MEMORY" envDefault:"10485760"`
	MaxJSONSize int64  `env:"BINDER_MAX_JSON_SIZE" envDefault:"1048576"`
	DefaultRule string `env:"BINDER_DEFAULT_RULE" envDefault:"text"`
}

// LoadConfig reads Config from the environment and the optional .env files.
func LoadConfig(files ...string) (Config, error) {
	cfg, err := config.Load[Config](files...)
	if err != nil {
		return Config{}, err
	}
	if !input.Rule(cfg.DefaultRule).Valid() {
		return Config{}, fmt.Errorf("BINDER_DEFAULT_RULE: %w: %q", input.ErrUnknownRule, cfg.DefaultRule)
	}
	return cfg, nil
}

// Options converts c into binder options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxMemory(c.MaxMemory),
		WithMaxJSONSize(c.MaxJSONSize),
		WithDefaultRule(input.Rule(c.DefaultRule)),
	}
}
