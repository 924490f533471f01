package script

import (
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ReportOption configures Result.JSON.
type ReportOption func(*reportConfig)

type reportConfig struct {
	runID  string
	pretty bool
	color  bool
}

// WithRunID stamps the report with an identifier for the run.
func WithRunID(id string) ReportOption {
	return func(c *reportConfig) {
		c.runID = id
	}
}

// WithPretty indents the report.
func WithPretty(enabled bool) ReportOption {
	return func(c *reportConfig) {
		c.pretty = enabled
	}
}

// WithColor adds terminal colour to an indented report.
func WithColor(enabled bool) ReportOption {
	return func(c *reportConfig) {
		c.color = enabled
	}
}

// JSON renders the result as a JSON report.
func (r *Result) JSON(opts ...ReportOption) ([]byte, error) {
	var cfg reportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{out: []byte(`{}`)}
	if cfg.runID != "" {
		b.set("run_id", cfg.runID)
	}
	if r.Pipeline != "" {
		b.set("pipeline", r.Pipeline)
	}
	b.set("input", r.Input)
	b.set("output", r.Output)
	b.set("length", len(r.Output))
	b.set("capacity", r.Capacity)
	b.set("hash", r.Hash)
	b.set("replaced", r.Replaced)
	b.setRaw("steps", []byte(`[]`))

	for _, st := range r.Steps {
		step := &builder{out: []byte(`{}`)}
		step.set("op", string(st.Op))
		step.set("ok", st.OK)
		if st.Op == OpReplace {
			step.set("replaced", st.Replaced)
		}
		step.set("length", st.Length)
		if step.err != nil {
			return nil, step.err
		}
		b.setRaw("steps.-1", step.out)
	}
	if b.err != nil {
		return nil, b.err
	}

	if cfg.pretty {
		out := pretty.Pretty(b.out)
		if cfg.color {
			out = pretty.Color(out, nil)
		}
		return out, nil
	}
	return append(b.out, '\n'), nil
}

// builder accumulates sjson edits and keeps the first error.
type builder struct {
	out []byte
	err error
}

func (b *builder) set(path string, value any) {
	if b.err != nil {
		return
	}
	b.out, b.err = sjson.SetBytes(b.out, path, value)
}

func (b *builder) setRaw(path string, raw []byte) {
	if b.err != nil {
		return
	}
	b.out, b.err = sjson.SetRawBytes(b.out, path, raw)
}
