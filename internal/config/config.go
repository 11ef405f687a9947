// Package config provides the game's tunables: a line-oriented key=value
// table, the typed Config passed to every component, and the silent fallback
// to the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Recognized keys.
const (
	KeyOneDayTime          = "OneDayTime"
	KeyBackgroundVelocity  = "BackgroundVelocity"
	KeyFirstPipeX          = "FirstPipeX"
	KeyPipeStride          = "PipeStride"
	KeyPipeIntervalMin     = "PipeIntervalMin"
	KeyFlapVelocity        = "FlapVelocity"
	KeyGravityAcceleration = "GravityAcceleration"
	KeyDeadVelocity        = "DeadVelocity"
)

// Keys lists every recognized key in a stable order.
var Keys = []string{
	KeyOneDayTime,
	KeyBackgroundVelocity,
	KeyFirstPipeX,
	KeyPipeStride,
	KeyPipeIntervalMin,
	KeyFlapVelocity,
	KeyGravityAcceleration,
	KeyDeadVelocity,
}

var (
	// ErrMissingKey is matched by every *MissingKeyError.
	ErrMissingKey = errors.New("config: missing key")
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("config: value is not an integer")
)

// MissingKeyError reports a lookup of a key the table does not hold.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config: missing key %q", e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// FormatError reports a stored value that does not parse as an integer.
type FormatError struct {
	Key   string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("config: key %q has non-integer value %q", e.Key, e.Value)
}

func (e *FormatError) Unwrap() []error { return []error{ErrFormat, e.Err} }

// Config contains every tunable of the game.
type Config struct {
	// Milliseconds per day (then the same for night).
	OneDayTime int `yaml:"one_day_time"`
	// Scroll speed of background and pipes in px/s; negative moves left.
	BackgroundVelocity int `yaml:"background_velocity"`
	FirstPipeX         int `yaml:"first_pipe_x"`
	// Horizontal distance between two pipe pairs.
	PipeStride int `yaml:"pipe_stride"`
	// Minimum vertical gap between the top and bottom pipe of a pair.
	PipeIntervalMin int `yaml:"pipe_interval_min"`

	FlapVelocity        int `yaml:"flap_velocity"`
	GravityAcceleration int `yaml:"gravity_acceleration"`
	DeadVelocity        int `yaml:"dead_velocity"`
}

// Table is the raw key=value form of the configuration.
type Table map[string]string

// Integer returns the integer value stored under name.
func (t Table) Integer(name string) (int, error) {
	raw, ok := t[name]
	if !ok {
		return 0, &MissingKeyError{Key: name}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FormatError{Key: name, Value: raw, Err: err}
	}
	return v, nil
}

// Config resolves every recognized key into a typed Config.
// It fails on the first key that is missing or not an integer.
func (t Table) Config() (Config, error) {
	var cfg Config
	for _, key := range Keys {
		v, err := t.Integer(key)
		if err != nil {
			return Config{}, err
		}
		*cfg.field(key) = v
	}
	return cfg, nil
}

// Table renders the config as a key=value table.
func (c Config) Table() Table {
	t := make(Table, len(Keys))
	for _, key := range Keys {
		t[key] = strconv.Itoa(*c.field(key))
	}
	return t
}

// field maps a recognized key to its struct field.
func (c *Config) field(key string) *int {
	switch key {
	case KeyOneDayTime:
		return &c.OneDayTime
	case KeyBackgroundVelocity:
		return &c.BackgroundVelocity
	case KeyFirstPipeX:
		return &c.FirstPipeX
	case KeyPipeStride:
		return &c.PipeStride
	case KeyPipeIntervalMin:
		return &c.PipeIntervalMin
	case KeyFlapVelocity:
		return &c.FlapVelocity
	case KeyGravityAcceleration:
		return &c.GravityAcceleration
	case KeyDeadVelocity:
		return &c.DeadVelocity
	}
	panic("config: unknown key " + key)
}
