package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	ErrCapacity    = errors.New("config: context.initial_capacity must not be negative")
	ErrFrames      = errors.New("config: bench.frames must be positive")
	ErrChurn       = errors.New("config: bench.churn_per_frame must not be negative")
	ErrSpawnSource = errors.New("config: bench.script_count must be positive when bench.script is set")
	ErrLogFormat   = errors.New("config: logging.format must be \"json\" or \"console\"")
	ErrProfileMode = errors.New("config: unknown profile.mode")
)

type Config struct {
	Context ContextConfig `toml:"context"`
	Bench   BenchConfig   `toml:"bench"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type ContextConfig struct {
	InitialCapacity int `toml:"initial_capacity"`
}

type BenchConfig struct {
	Workload      string        `toml:"workload"` // YAML workload; empty uses the built-in reference workload
	Script        string        `toml:"script"`   // Lua spawn script, replaces the workload when set
	ScriptCount   int           `toml:"script_count"`
	Frames        int           `toml:"frames"`
	FrameTime     time.Duration `toml:"frame_time"`
	ChurnPerFrame int           `toml:"churn_per_frame"`
	Seed          int64         `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", cpu, mem, block, mutex, trace, goroutine
	Path string `toml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return defaults()
}

func (c *Config) Validate() error {
	switch {
	case c.Context.InitialCapacity < 0:
		return ErrCapacity
	case c.Bench.Frames <= 0:
		return ErrFrames
	case c.Bench.ChurnPerFrame < 0:
		return ErrChurn
	case c.Bench.Script != "" && c.Bench.ScriptCount <= 0:
		return ErrSpawnSource
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return ErrLogFormat
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem", "block", "mutex", "trace", "goroutine":
	default:
		return fmt.Errorf("%w %q", ErrProfileMode, c.Profile.Mode)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Context: ContextConfig{
			InitialCapacity: 256,
		},
		Bench: BenchConfig{
			ScriptCount:   10000,
			Frames:        600,
			FrameTime:     16 * time.Millisecond,
			ChurnPerFrame: 20,
			Seed:          1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: "profile",
		},
	}
}
