// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv for file loading and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type CLIConfig struct {
//		LogLevel string `env:"INPUTKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[CLIConfig]()
//
// Without arguments Load reads ./.env when it exists. Explicit files must
// exist. Variables already present in the process environment always win
// over file values.
package config
