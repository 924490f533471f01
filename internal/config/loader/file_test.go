package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"crtext.yaml", FormatYAML, false},
		{"/etc/crtext.YML", FormatYAML, false},
		{"crtext.toml", FormatTOML, false},
		{"crtext.json", "", true},
		{"crtext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.err {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFileLoader_TOML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/crtext.toml", `
[engine]
slots = 8
trimSet = " -"

[logging]
level = "debug"
`)

	l, err := NewFileLoaderWithFS(memfs, "/crtext.toml")
	require.NoError(t, err)
	require.Equal(t, FormatTOML, l.Format())

	config, err := l.Load()
	require.NoError(t, err)

	val, _ := getByPath(config, "engine", "slots")
	require.Equal(t, int64(8), val)
	val, _ = getByPath(config, "engine", "trimSet")
	require.Equal(t, " -", val)
	val, _ = getByPath(config, "logging", "level")
	require.Equal(t, "debug", val)
}

func TestFileLoader_YAML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/crtext.yaml", `
engine:
  slots: 4
  slotSize: 64
lua:
  settings:
    prefix: ">> "
    widths: [10, 20]
`)

	l, err := NewFileLoaderWithFS(memfs, "/crtext.yaml")
	require.NoError(t, err)

	config, err := l.Load()
	require.NoError(t, err)

	val, _ := getByPath(config, "engine", "slotSize")
	require.Equal(t, 64, val)
	val, _ = getByPath(config, "lua", "settings", "prefix")
	require.Equal(t, ">> ", val)
	val, _ = getByPath(config, "lua", "settings", "widths")
	require.Equal(t, []any{10, 20}, val)
}

func TestFileLoader_Missing(t *testing.T) {
	l, err := NewFileLoaderWithFS(NewMemFS(), "/missing.toml")
	require.NoError(t, err)

	config, err := l.Load()
	require.NoError(t, err)
	require.Nil(t, config)
}

func TestFileLoader_Empty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yaml", "")
	memfs.AddFile("/empty.toml", "")

	for _, path := range []string{"/empty.yaml", "/empty.toml"} {
		l, err := NewFileLoaderWithFS(memfs, path)
		require.NoError(t, err)
		config, err := l.Load()
		require.NoError(t, err)
		require.NotNil(t, config)
		require.Empty(t, config)
	}
}

func TestFileLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[engine]\nslots = = 3\n")
	memfs.AddFile("/bad.yaml", "engine: [unclosed\n")

	l, err := NewFileLoaderWithFS(memfs, "/bad.toml")
	require.NoError(t, err)
	_, err = l.Load()

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "/bad.toml", perr.Path)
	require.Equal(t, 2, perr.Line)
	require.NotNil(t, errors.Unwrap(err))

	l, err = NewFileLoaderWithFS(memfs, "/bad.yaml")
	require.NoError(t, err)
	_, err = l.Load()
	require.True(t, errors.As(err, &perr))
	require.Contains(t, perr.Error(), "/bad.yaml")
}

func TestFileLoader_LoadFromReader(t *testing.T) {
	l, err := NewFileLoaderWithFS(NewMemFS(), "inline.yaml")
	require.NoError(t, err)

	var rl ReaderLoader = l
	config, err := rl.LoadFromReader(strings.NewReader("output:\n  json: true\n"))
	require.NoError(t, err)
	val, _ := getByPath(config, "output", "json")
	require.Equal(t, true, val)
}

func TestFileLoader_LoadWithIncludes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/conf/main.toml", `
"@include" = ["base.yaml", "extra.toml"]

[engine]
slots = 2
`)
	memfs.AddFile("/conf/base.yaml", `
engine:
  slots: 16
  slotSize: 512
logging:
  level: warn
`)
	memfs.AddFile("/conf/extra.toml", `
[logging]
level = "info"
`)

	l, err := NewFileLoaderWithFS(memfs, "/conf/main.toml")
	require.NoError(t, err)

	config, err := l.LoadWithIncludes("/conf/main.toml", 4)
	require.NoError(t, err)

	_, hasInclude := config["@include"]
	require.False(t, hasInclude)

	val, _ := getByPath(config, "engine", "slots")
	require.Equal(t, int64(2), val, "main file overrides includes")
	val, _ = getByPath(config, "engine", "slotSize")
	require.Equal(t, 512, val)
	val, _ = getByPath(config, "logging", "level")
	require.Equal(t, "info", val, "later includes override earlier ones")
}

func TestFileLoader_IncludeCycle(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = "b.toml"`)
	memfs.AddFile("/b.toml", `"@include" = "a.toml"`)

	l, err := NewFileLoaderWithFS(memfs, "/a.toml")
	require.NoError(t, err)

	_, err = l.LoadWithIncludes("/a.toml", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "include depth exceeded")
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"engine":  map[string]any{"slots": 16, "slotSize": 1024},
		"logging": "flat",
	}
	src := map[string]any{
		"engine":  map[string]any{"slots": 4},
		"logging": map[string]any{"level": "debug"},
		"new":     true,
	}

	got := DeepMerge(dst, src)
	require.Equal(t, map[string]any{
		"engine":  map[string]any{"slots": 4, "slotSize": 1024},
		"logging": map[string]any{"level": "debug"},
		"new":     true,
	}, got)

	require.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
	require.Equal(t, map[string]any{"a": 1}, DeepMerge(map[string]any{"a": 1}, nil))
}
