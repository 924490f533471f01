package config

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return nil, nil
}

func newTestConfig(files memFS, opts ...Option) *Config {
	base := []Option{
		WithFS(files),
		WithUserConfigDir("/home/user/.config/crtext"),
		WithEnvironment(false),
	}
	return New(append(base, opts...)...)
}

func TestDefaults(t *testing.T) {
	c := newTestConfig(memFS{})
	require.NoError(t, c.Load(context.Background()))

	s := c.Settings()
	require.Equal(t, Default(), s)
	require.Equal(t, 16, s.Engine.Slots)
	require.Equal(t, 1024, s.Engine.SlotSize)
	require.Equal(t, "\r\n\t ", s.Engine.TrimSet)
	require.Empty(t, c.Files())

	level, err := s.Logging.ParseLevel()
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, level)
}

func TestLoadUserAndExplicitFiles(t *testing.T) {
	files := memFS{
		"/home/user/.config/crtext/config.toml": `
[engine]
slots = 4
slotSize = 256

[logging]
level = "debug"
`,
		"/work/crtext.yaml": `
engine:
  slotSize: 64
watch:
  enabled: true
  debounce: 250ms
lua:
  timeout: 2s
  settings:
    prefix: "> "
`,
	}
	c := newTestConfig(files, WithFile("/work/crtext.yaml"))
	require.NoError(t, c.Load(context.Background()))

	s := c.Settings()
	require.Equal(t, 4, s.Engine.Slots, "user file value survives")
	require.Equal(t, 64, s.Engine.SlotSize, "explicit file overrides user file")
	require.Equal(t, "debug", s.Logging.Level)
	require.True(t, s.Watch.Enabled)
	require.Equal(t, 250*time.Millisecond, s.Watch.Debounce)
	require.Equal(t, 2*time.Second, s.Lua.Timeout)
	require.Equal(t, "> ", s.Lua.Settings["prefix"])
	require.Equal(t, []string{"/home/user/.config/crtext/config.toml", "/work/crtext.yaml"}, c.Files())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CRTEXT_SLOTS", "3")
	t.Setenv("CRTEXT_OUTPUT_JSON", "true")
	t.Setenv("CRTEXT_LUA_TIMEOUT", "750ms")

	files := memFS{"/crtext.toml": "[engine]\nslots = 9\n"}
	c := newTestConfig(files, WithFile("/crtext.toml"), WithEnvironment(true))
	require.NoError(t, c.Load(context.Background()))

	s := c.Settings()
	require.Equal(t, 3, s.Engine.Slots, "environment overrides files")
	require.True(t, s.Output.JSON)
	require.Equal(t, 750*time.Millisecond, s.Lua.Timeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	c := newTestConfig(memFS{}, WithFile("/nope.yaml"))
	err := c.Load(context.Background())
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	c := newTestConfig(memFS{"/crtext.ini": "x=1"}, WithFile("/crtext.ini"))
	require.Error(t, c.Load(context.Background()))
}

func TestLoadValidation(t *testing.T) {
	files := memFS{"/bad.yaml": `
logging:
  level: loud
engine:
  slots: 0
  trimSet: ""
`}
	c := newTestConfig(files, WithFile("/bad.yaml"))
	err := c.Load(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, err.Error(), "logging.level")
	require.Contains(t, err.Error(), "engine.slots")
	require.Contains(t, err.Error(), "engine.trimSet")

	require.Equal(t, Default(), c.Settings(), "failed load keeps previous settings")
}

func TestLoadTypeMismatch(t *testing.T) {
	files := memFS{"/bad.yaml": "engine:\n  slots: [1, 2]\n"}
	c := newTestConfig(files, WithFile("/bad.yaml"))
	err := c.Load(context.Background())
	require.ErrorIs(t, err, ErrTypeMismatch)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, ErrCodeTypeMismatch, verr.Code)
	require.Equal(t, "engine.slots", verr.Path)
	require.Equal(t, []any{1, 2}, verr.Value)
	require.Equal(t, Default(), c.Settings())
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"'engine.slots' expected type 'int', got unconvertible type '[]interface {}'", "engine.slots"},
		{"'' expected a map, got 'string'", ""},
		{"no quoted name", ""},
		{"'unterminated", ""},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			require.Equal(t, tt.want, decodePath(tt.msg))
		})
	}
}

func TestGetters(t *testing.T) {
	files := memFS{"/crtext.yaml": "engine:\n  slots: 5\noutput:\n  json: true\n"}
	c := newTestConfig(files, WithFile("/crtext.yaml"))
	require.NoError(t, c.Load(context.Background()))

	n, err := c.GetInt("engine.slots")
	require.NoError(t, err)
	require.Equal(t, 5, n)

	b, err := c.GetBool("output.json")
	require.NoError(t, err)
	require.True(t, b)

	s, err := c.GetString("logging.level")
	require.NoError(t, err)
	require.Equal(t, "info", s)

	_, err = c.GetString("engine.slots")
	require.ErrorIs(t, err, ErrTypeMismatch)
	var terr *TypeError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "int", terr.Actual)

	_, err = c.GetInt("engine.missing")
	require.ErrorIs(t, err, ErrSettingNotFound)

	_, ok := c.Get("")
	require.False(t, ok)
}

func TestValidationErrorCode(t *testing.T) {
	require.Equal(t, "out_of_range", ErrCodeOutOfRange.String())
	require.Equal(t, "invalid_enum", ErrCodeInvalidEnum.String())
	require.Equal(t, "unknown", ValidationErrorCode(99).String())
}
