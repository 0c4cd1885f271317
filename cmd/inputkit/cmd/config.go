package cmd

import "github.com/dmitrymomot/inputkit/pkg/config"

// Config is read from the environment (and .env) before every command.
// Flags take precedence over these values.
type Config struct {
	LogLevel  string `env:"INPUTKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"INPUTKIT_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"INPUTKIT_OUTPUT" envDefault:"text"`
}

// LoadConfig loads Config, reading files instead of ./.env when given.
func LoadConfig(files ...string) (Config, error) {
	return config.Load[Config](files...)
}
