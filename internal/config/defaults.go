package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/magi.yaml
var defaultMagiYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		OneDayTime:          10000,
		BackgroundVelocity:  -500,
		FirstPipeX:          900,
		PipeStride:          400,
		PipeIntervalMin:     165,
		FlapVelocity:        -420,
		GravityAcceleration: 1850,
		DeadVelocity:        600,
	}
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultMagiYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

