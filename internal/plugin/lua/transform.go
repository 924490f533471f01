package lua

import (
	"fmt"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"

	"github.com/dshills/crtext/internal/engine"
	"github.com/dshills/crtext/internal/engine/str"
)

// TransformFunc is the global function a script must define.
const TransformFunc = "transform"

// ScriptSettings are the host-visible fields of a script's settings table.
// Keys are snake_case in Lua.
type ScriptSettings struct {
	// Name identifies the script in logs and reports.
	Name string
	// TrimInput trims the input with the engine trim set before transform.
	TrimInput bool
}

// Transformer runs a Lua script's transform(s) function over text.
type Transformer struct {
	state    *State
	engine   *engine.Engine
	bridge   *Bridge
	log      *logrus.Entry
	settings ScriptSettings
}

// TransformerOption configures a Transformer.
type TransformerOption func(*transformerConfig)

type transformerConfig struct {
	settings map[string]any
	state    []StateOption
	log      *logrus.Entry
}

// WithSettings sets the initial contents of the script's settings table.
func WithSettings(settings map[string]any) TransformerOption {
	return func(c *transformerConfig) {
		c.settings = settings
	}
}

// WithStateOptions passes options to the underlying State.
func WithStateOptions(opts ...StateOption) TransformerOption {
	return func(c *transformerConfig) {
		c.state = append(c.state, opts...)
	}
}

// WithTransformLogger sets the logger for the transformer and the script.
func WithTransformLogger(log *logrus.Entry) TransformerOption {
	return func(c *transformerConfig) {
		c.log = log
	}
}

// NewTransformer loads the script at path. The script runs once at load
// time with the crtext module and the settings table installed; it must
// define a global transform function.
func NewTransformer(e *engine.Engine, path string, opts ...TransformerOption) (*Transformer, error) {
	return newTransformer(e, func(s *State) error { return s.DoFile(path) }, path, opts)
}

// NewTransformerFromString is NewTransformer for inline source.
func NewTransformerFromString(e *engine.Engine, code string, opts ...TransformerOption) (*Transformer, error) {
	return newTransformer(e, func(s *State) error { return s.DoString(code) }, "<string>", opts)
}

func newTransformer(e *engine.Engine, load func(*State) error, source string, opts []TransformerOption) (*Transformer, error) {
	cfg := &transformerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.NewEntry(logrus.StandardLogger())
	}
	log := cfg.log.WithField("script", source)

	state := NewState(append([]StateOption{WithLogger(log)}, cfg.state...)...)
	t := &Transformer{
		state:  state,
		engine: e,
		bridge: NewBridge(state.L),
		log:    log,
	}

	InstallModule(state, e)
	settings := cfg.settings
	if settings == nil {
		settings = map[string]any{}
	}
	state.SetGlobal("settings", t.bridge.ToLuaValue(settings))

	if err := load(state); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading lua script %s: %w", source, err)
	}
	if fn := state.GetGlobal(TransformFunc); fn.Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("%w: %s does not define %s", ErrFunctionNotFound, source, TransformFunc)
	}

	if tbl, ok := state.GetGlobal("settings").(*lua.LTable); ok {
		if err := t.bridge.Decode(tbl, &t.settings); err != nil {
			state.Close()
			return nil, err
		}
	}
	if t.settings.Name != "" {
		t.log = t.log.WithField("name", t.settings.Name)
	}

	t.log.Debug("lua transform loaded")
	return t, nil
}

// Settings returns the decoded script settings.
func (t *Transformer) Settings() ScriptSettings {
	return t.settings
}

// Apply calls transform with s. The script may mutate s in place, return a
// string, or return a String; the result is written back into s.
func (t *Transformer) Apply(s *str.String) error {
	if t.settings.TrimInput {
		t.engine.Trim(s)
	}

	results, err := t.state.Call(TransformFunc, luar.New(t.state.L, s))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	switch v := results[0].(type) {
	case *lua.LNilType:
	case lua.LString:
		s.Assign(string(v))
	case lua.LNumber:
		s.Assign(v.String())
	case *lua.LUserData:
		out, ok := v.Value.(*str.String)
		if !ok {
			return fmt.Errorf("%w: %T", ErrBadResult, v.Value)
		}
		if out != s {
			s.AssignView(out.View())
		}
	default:
		return fmt.Errorf("%w: %s", ErrBadResult, results[0].Type())
	}
	return nil
}

// Close releases the Lua state.
func (t *Transformer) Close() {
	t.state.Close()
}
