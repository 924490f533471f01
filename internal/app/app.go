// Package app wires configuration, logging, the text engine, JSON
// pipelines, Lua transforms and file watching into the crtext command.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/crtext/internal/config"
	"github.com/dshills/crtext/internal/engine"
	"github.com/dshills/crtext/internal/engine/str"
	"github.com/dshills/crtext/internal/plugin/lua"
	"github.com/dshills/crtext/internal/script"
	"github.com/dshills/crtext/internal/watch"
)

// Application runs text through the configured pipeline and Lua transform.
// Processing is single threaded: in watch mode every re-run happens on the
// goroutine that called Run.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config   *config.Config
	settings config.Settings
	logger   *logrus.Logger
	log      *logrus.Entry
	runID    string

	// Text processing
	engine    *engine.Engine
	pipeline  *script.Pipeline
	transform *lua.Transformer

	// Watch mode
	watcher *watch.Watcher

	closed bool
	opts   Options
}

// Options configures the application. Flag values override the matching
// configuration settings when set.
type Options struct {
	// ConfigPath is an extra configuration file.
	ConfigPath string

	// ScriptPath is a JSON pipeline file.
	ScriptPath string

	// LuaPath is a Lua transform script.
	LuaPath string

	// InputPath is the file to process. Empty or "-" reads Stdin.
	InputPath string

	// JSON prints a report instead of the bare result.
	JSON bool

	// Watch re-runs whenever the input, pipeline or Lua script changes.
	Watch bool

	// LogLevel overrides the configured log level.
	LogLevel string

	// Terminal reports whether Stdout is a terminal. Reports are only
	// indented and coloured for terminals.
	Terminal bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ConfigOptions are passed to config.New after the file option.
	ConfigOptions []config.Option
}

// New creates a new Application with the given options.
func New(ctx context.Context, opts Options) (*Application, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{
		opts:  opts,
		runID: uuid.NewString(),
	}
	if err := app.bootstrap(ctx); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap(ctx context.Context) error {
	cfgOpts := append([]config.Option{config.WithFile(app.opts.ConfigPath)}, app.opts.ConfigOptions...)
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(ctx); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.settings = app.applyOverrides(app.config.Settings())
	if err := app.settings.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	logger, err := NewLogger(app.settings.Logging, app.opts.Stderr)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger = logger
	app.log = logrus.NewEntry(logger).WithField("run_id", app.runID)

	app.engine = engine.New(
		engine.WithSlots(app.settings.Engine.Slots),
		engine.WithSlotSize(app.settings.Engine.SlotSize),
		engine.WithTrimSet(app.settings.Engine.TrimSet),
		engine.WithLogger(app.log),
	)

	if err := app.loadPipeline(); err != nil {
		return &InitError{Component: "script", Err: err}
	}
	if err := app.loadTransform(); err != nil {
		return &InitError{Component: "lua", Err: err}
	}

	app.log.WithFields(logrus.Fields{
		"config": app.config.Files(),
		"script": app.settings.Pipeline.Script,
		"lua":    app.settings.Pipeline.Lua,
	}).Debug("application initialized")
	return nil
}

func (app *Application) applyOverrides(s config.Settings) config.Settings {
	if app.opts.LogLevel != "" {
		s.Logging.Level = app.opts.LogLevel
	}
	if app.opts.ScriptPath != "" {
		s.Pipeline.Script = app.opts.ScriptPath
	}
	if app.opts.LuaPath != "" {
		s.Pipeline.Lua = app.opts.LuaPath
	}
	s.Output.JSON = s.Output.JSON || app.opts.JSON
	s.Watch.Enabled = s.Watch.Enabled || app.opts.Watch
	return s
}

func (app *Application) loadPipeline() error {
	if app.settings.Pipeline.Script == "" {
		return nil
	}
	p, err := script.ParseFile(app.settings.Pipeline.Script)
	if err != nil {
		return err
	}
	app.pipeline = p
	return nil
}

func (app *Application) loadTransform() error {
	if app.settings.Pipeline.Lua == "" {
		return nil
	}
	t, err := lua.NewTransformer(app.engine, app.settings.Pipeline.Lua,
		lua.WithSettings(app.settings.Lua.Settings),
		lua.WithStateOptions(lua.WithExecutionTimeout(app.settings.Lua.Timeout)),
		lua.WithTransformLogger(app.log),
	)
	if err != nil {
		return err
	}
	if app.transform != nil {
		app.transform.Close()
	}
	app.transform = t
	return nil
}

// Run processes the input once and, in watch mode, again after every change
// until ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if err := app.runOnce(); err != nil {
		return err
	}
	if !app.settings.Watch.Enabled {
		return nil
	}
	if app.opts.InputPath == "" || app.opts.InputPath == "-" {
		return ErrWatchStdin
	}

	w, err := watch.New(app.onChange,
		watch.WithDebounce(app.settings.Watch.Debounce),
		watch.WithLogger(app.log),
	)
	if err != nil {
		return NewComponentError("watch", "create", err)
	}

	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		w.Close()
		return ErrShutdown
	}
	app.watcher = w
	app.mu.Unlock()

	for _, path := range app.watchedPaths() {
		if err := w.Add(path); err != nil {
			return NewComponentError("watch", path, err)
		}
	}

	app.log.WithField("files", w.Files()).Info("watching for changes")
	return w.Run(ctx)
}

func (app *Application) watchedPaths() []string {
	paths := []string{app.opts.InputPath}
	if p := app.settings.Pipeline.Script; p != "" {
		paths = append(paths, p)
	}
	if p := app.settings.Pipeline.Lua; p != "" {
		paths = append(paths, p)
	}
	return paths
}

// onChange reloads whatever changed and re-runs. Failures are logged so a
// broken edit does not end the session.
func (app *Application) onChange(ev watch.Event) {
	log := app.log.WithFields(logrus.Fields{"path": ev.Path, "op": ev.Op.String()})

	var err error
	switch ev.Path {
	case absPath(app.settings.Pipeline.Script):
		err = app.loadPipeline()
	case absPath(app.settings.Pipeline.Lua):
		err = app.loadTransform()
	}
	if err != nil {
		log.WithError(err).Error("reload failed")
		return
	}

	if err := app.runOnce(); err != nil {
		log.WithError(err).Error("run failed")
	}
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func (app *Application) runOnce() error {
	input, err := app.readInput()
	if err != nil {
		return err
	}
	res, err := app.Process(input)
	if err != nil {
		return err
	}
	return app.write(res)
}

func (app *Application) readInput() ([]byte, error) {
	if app.opts.InputPath == "" || app.opts.InputPath == "-" {
		data, err := io.ReadAll(app.opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(app.opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// Process runs input through the pipeline and then the Lua transform.
func (app *Application) Process(input []byte) (*script.Result, error) {
	s := str.FromBytes(input)

	res := &script.Result{Input: s.String()}
	if app.pipeline != nil {
		res = app.pipeline.Run(app.engine, s)
	}
	if app.transform != nil {
		if err := app.transform.Apply(s); err != nil {
			return nil, NewComponentError("lua", "transform", err)
		}
	}

	res.Output = s.String()
	res.Capacity = s.Cap()
	res.Hash = s.Hash()
	return res, nil
}

func (app *Application) write(res *script.Result) error {
	if app.settings.Output.JSON {
		pretty := app.settings.Output.Pretty && app.opts.Terminal
		out, err := res.JSON(
			script.WithRunID(app.runID),
			script.WithPretty(pretty),
			script.WithColor(pretty),
		)
		if err != nil {
			return NewComponentError("output", "report", err)
		}
		_, err = app.opts.Stdout.Write(out)
		return err
	}

	out := []byte(res.Output)
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	_, err := app.opts.Stdout.Write(out)
	return err
}

// Shutdown releases the watcher and the Lua state. It is safe to call more
// than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return
	}
	app.closed = true

	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil && app.log != nil {
			app.log.WithError(err).Warn("closing watcher")
		}
	}
	if app.transform != nil {
		app.transform.Close()
	}
}

// RunID returns the identifier attached to every log entry and report.
func (app *Application) RunID() string {
	return app.runID
}

// Settings returns the effective settings after flag overrides.
func (app *Application) Settings() config.Settings {
	return app.settings
}

// Engine returns the text engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Logger returns the process logger.
func (app *Application) Logger() *logrus.Logger {
	return app.logger
}
