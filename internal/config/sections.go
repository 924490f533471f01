package config

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/crtext/internal/engine/scratch"
	"github.com/dshills/crtext/internal/engine/str"
)

// Settings is the decoded configuration. Section structs are snapshots;
// mutating them does not modify the Config.
type Settings struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Output   OutputConfig   `mapstructure:"output"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Lua      LuaConfig      `mapstructure:"lua"`
}

// LoggingConfig controls diagnostics.
type LoggingConfig struct {
	// Level is a logrus level name ("debug", "info", "warn", ...).
	Level string `mapstructure:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// EngineConfig sizes the text engine.
type EngineConfig struct {
	// Slots is the number of scratch buffers.
	Slots int `mapstructure:"slots"`

	// SlotSize is the size of each scratch buffer in bytes.
	SlotSize int `mapstructure:"slotSize"`

	// TrimSet is the set of bytes removed by trim operations.
	TrimSet string `mapstructure:"trimSet"`
}

// PipelineConfig names the transforms applied to the input.
type PipelineConfig struct {
	// Script is a JSON pipeline file.
	Script string `mapstructure:"script"`

	// Lua is a Lua script defining transform(s).
	Lua string `mapstructure:"lua"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// JSON prints a JSON report instead of the bare result.
	JSON bool `mapstructure:"json"`

	// Pretty indents JSON reports written to a terminal.
	Pretty bool `mapstructure:"pretty"`
}

// WatchConfig controls re-running on file changes.
type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Debounce coalesces bursts of change events.
	Debounce time.Duration `mapstructure:"debounce"`
}

// LuaConfig controls the Lua bridge.
type LuaConfig struct {
	// Timeout bounds a single transform call. Zero disables the limit.
	Timeout time.Duration `mapstructure:"timeout"`

	// Settings is exposed to scripts as the global table "settings".
	Settings map[string]any `mapstructure:"settings"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Engine: EngineConfig{
			Slots:    scratch.DefaultSlots,
			SlotSize: scratch.DefaultSlotSize,
			TrimSet:  str.DefaultTrimSet,
		},
		Output: OutputConfig{
			Pretty: true,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Lua: LuaConfig{
			Timeout: 5 * time.Second,
		},
	}
}

// ParseLevel returns the configured logrus level.
func (l LoggingConfig) ParseLevel() (logrus.Level, error) {
	return logrus.ParseLevel(l.Level)
}

// Validate checks every section and returns all failures joined.
func (s Settings) Validate() error {
	var errs []error
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if _, err := s.Logging.ParseLevel(); err != nil {
		add("logging.level", "unknown log level", s.Logging.Level, ErrCodeInvalidEnum)
	}
	if s.Logging.Format != "text" && s.Logging.Format != "json" {
		add("logging.format", `must be "text" or "json"`, s.Logging.Format, ErrCodeInvalidEnum)
	}
	if s.Engine.Slots < 1 {
		add("engine.slots", "must be at least 1", s.Engine.Slots, ErrCodeOutOfRange)
	}
	if s.Engine.SlotSize < 1 {
		add("engine.slotSize", "must be at least 1", s.Engine.SlotSize, ErrCodeOutOfRange)
	}
	if s.Engine.TrimSet == "" {
		add("engine.trimSet", "must not be empty", s.Engine.TrimSet, ErrCodeRequiredMissing)
	}
	if s.Watch.Debounce < 0 {
		add("watch.debounce", "must not be negative", s.Watch.Debounce, ErrCodeOutOfRange)
	}
	if s.Lua.Timeout < 0 {
		add("lua.timeout", "must not be negative", s.Lua.Timeout, ErrCodeOutOfRange)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrValidationFailed}, errs...)...)
}
