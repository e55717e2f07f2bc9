// Package config loads program settings from defaults, an optional YAML
// file and FLASHCARDS_* environment variables.
package config

// Config holds all program configuration
type Config struct {
	Log  LogConfig  `mapstructure:"log" validate:"required"`
	Quiz QuizConfig `mapstructure:"quiz"`
}

// LogConfig controls diagnostic logging. User-facing text is not affected.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// QuizConfig controls question selection
type QuizConfig struct {
	// Seed makes question order reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}
