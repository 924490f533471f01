package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func getByPath(data map[string]any, path ...string) (any, bool) {
	var current any = data
	for _, part := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func newTestEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := newTestEnvLoader(
		"CRTEXT_LOG_LEVEL=debug",
		"CRTEXT_SLOT_SIZE=2048",
		"CRTEXT_WATCH=yes",
		"CRTEXT_WATCH_DEBOUNCE=250ms",
		"HOME=/root",
	)
	config, err := l.Load()
	require.NoError(t, err)

	val, ok := getByPath(config, "logging", "level")
	require.True(t, ok)
	require.Equal(t, "debug", val)

	val, _ = getByPath(config, "engine", "slotSize")
	require.Equal(t, int64(2048), val)

	val, _ = getByPath(config, "watch", "enabled")
	require.Equal(t, true, val)

	val, _ = getByPath(config, "watch", "debounce")
	require.Equal(t, 250*time.Millisecond, val)

	_, ok = config["home"]
	require.False(t, ok, "variables without the prefix must be ignored")
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	l := newTestEnvLoader("CRTEXT_LUA_SETTINGS_MAX_WIDTH=80", "CRTEXT_CUSTOM=value")
	config, err := l.Load()
	require.NoError(t, err)

	val, ok := getByPath(config, "lua", "settingsMaxWidth")
	require.True(t, ok)
	require.Equal(t, int64(80), val)

	val, _ = getByPath(config, "custom")
	require.Equal(t, "value", val)
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := newTestEnvLoader("CRTEXT_W=5")
	l.AddMapping("CRTEXT_W", "lua.settings.width")

	config, err := l.Load()
	require.NoError(t, err)
	val, _ := getByPath(config, "lua", "settings", "width")
	require.Equal(t, int64(5), val)
}

func TestEnvLoader_CustomMapping(t *testing.T) {
	l := NewEnvLoaderWithMapping("APP_", map[string]string{
		"APP_N": "engine.slots",
	})
	l.environ = func() []string {
		return []string{"APP_N=9", "APP_OUTPUT_JSON=yes", "CRTEXT_SLOTS=3"}
	}

	config, err := l.Load()
	require.NoError(t, err)

	val, _ := getByPath(config, "engine", "slots")
	require.Equal(t, int64(9), val)
	val, _ = getByPath(config, "output", "json")
	require.Equal(t, true, val, "unmapped names fall back to SECTION_SETTING")
	require.Len(t, config, 2, "other prefixes are ignored")
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader("CRTEXT_")
	tests := []struct {
		env  string
		want string
	}{
		{"CRTEXT_ENGINE_SLOT_SIZE", "engine.slotSize"},
		{"CRTEXT_OUTPUT_PRETTY", "output.pretty"},
		{"CRTEXT_CUSTOM", "custom"},
		{"CRTEXT_A_B_C_D", "a.bCD"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			require.Equal(t, tt.want, l.envToPath(tt.env))
		})
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	l := NewEnvLoader("CRTEXT_")
	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"OFF", false},
		{"42", int64(42)},
		{"1", int64(1)},
		{"3.5", 3.5},
		{"2s", 2 * time.Second},
		{`["a","b"]`, []any{"a", "b"}},
		{`{"k":1}`, map[string]any{"k": float64(1)}},
		{"[not json", "[not json"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, l.parseValue(tt.input))
		})
	}
}
