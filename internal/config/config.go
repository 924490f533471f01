package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/dshills/crtext/internal/config/loader"
)

// Config loads settings from built-in defaults, the user configuration
// file, explicitly named files and the environment, in increasing order of
// priority, and decodes the merged result into Settings.
type Config struct {
	merged   map[string]any
	settings Settings
	loaded   []string

	// Sources
	files         []string
	userConfigDir string
	envPrefix     string
	fs            loader.FileSystem
	useEnv        bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile adds a configuration file. Later files override earlier ones.
func WithFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.files = append(c.files, path)
		}
	}
}

// WithUserConfigDir sets the directory searched for config.yaml,
// config.yml and config.toml. An empty dir disables the user file.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnvironment enables or disables reading environment variables.
func WithEnvironment(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// WithFS sets the file system used to read configuration files.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a new Config with the given options. Call Load before
// reading settings; until then Settings returns the defaults.
func New(opts ...Option) *Config {
	c := &Config{
		userConfigDir: defaultUserConfigDir(),
		envPrefix:     loader.DefaultEnvPrefix,
		fs:            loader.DefaultFS(),
		useEnv:        true,
		settings:      Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load loads configuration from all sources, decodes and validates it.
func (c *Config) Load(_ context.Context) error {
	merged := defaultConfig()
	c.loaded = c.loaded[:0]

	if path := c.userConfigPath(); path != "" {
		if err := c.mergeFile(merged, path); err != nil {
			return err
		}
	}

	for _, path := range c.files {
		if _, err := c.fs.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if err := c.mergeFile(merged, path); err != nil {
			return err
		}
	}

	if c.useEnv {
		env, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	settings, err := decode(merged)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	c.merged = merged
	c.settings = settings
	return nil
}

// mergeFile loads path, including its @include directives, into merged.
func (c *Config) mergeFile(merged map[string]any, path string) error {
	l, err := loader.NewFileLoaderWithFS(c.fs, path)
	if err != nil {
		return err
	}
	data, err := l.LoadWithIncludes(path, maxIncludeDepth)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	loader.DeepMerge(merged, data)
	c.loaded = append(c.loaded, path)
	return nil
}

// userConfigPath returns the first existing user configuration file.
func (c *Config) userConfigPath() string {
	if c.userConfigDir == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(c.userConfigDir, name)
		if _, err := c.fs.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Settings returns the decoded settings.
func (c *Config) Settings() Settings {
	return c.settings
}

// Files returns the configuration files read by the last Load, in order.
func (c *Config) Files() []string {
	return append([]string(nil), c.loaded...)
}

// Merged returns the merged configuration map of the last Load.
func (c *Config) Merged() map[string]any {
	return c.merged
}

// Get returns the value at the given dot-separated path.
func (c *Config) Get(path string) (any, bool) {
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// decode converts the merged map into Settings. String durations such as
// "200ms" and weakly typed scalars from the environment are accepted.
func decode(merged map[string]any) (Settings, error) {
	settings := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &settings,
	})
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(merged); err != nil {
		return Settings{}, decodeError(merged, err)
	}
	return settings, nil
}

// decodeError converts a mapstructure failure into one ValidationError per
// offending setting, joined with ErrTypeMismatch.
func decodeError(merged map[string]any, err error) error {
	msgs := []string{err.Error()}
	var merr *mapstructure.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		msgs = merr.Errors
	}
	errs := []error{ErrTypeMismatch}
	for _, msg := range msgs {
		path := decodePath(msg)
		value, _ := getPath(merged, path)
		errs = append(errs, &ValidationError{
			Path:    path,
			Message: msg,
			Value:   value,
			Code:    ErrCodeTypeMismatch,
		})
	}
	return errors.Join(errs...)
}

// decodePath extracts the quoted field name mapstructure puts at the start
// of each message, e.g. "'engine.slots' expected type 'int'".
func decodePath(msg string) string {
	if !strings.HasPrefix(msg, "'") {
		return ""
	}
	path, _, ok := strings.Cut(msg[1:], "'")
	if !ok {
		return ""
	}
	return path
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "crtext")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "crtext")
}

const maxIncludeDepth = 8

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	d := Default()
	return map[string]any{
		"logging": map[string]any{
			"level":  d.Logging.Level,
			"format": d.Logging.Format,
		},
		"engine": map[string]any{
			"slots":    d.Engine.Slots,
			"slotSize": d.Engine.SlotSize,
			"trimSet":  d.Engine.TrimSet,
		},
		"output": map[string]any{
			"json":   d.Output.JSON,
			"pretty": d.Output.Pretty,
		},
		"watch": map[string]any{
			"enabled":  d.Watch.Enabled,
			"debounce": d.Watch.Debounce,
		},
		"lua": map[string]any{
			"timeout": d.Lua.Timeout,
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := any(m)
	for _, part := range strings.Split(path, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case time.Duration:
		return "duration"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
