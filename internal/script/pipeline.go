package script

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/dshills/crtext/internal/engine"
	"github.com/dshills/crtext/internal/engine/str"
	"github.com/dshills/crtext/internal/engine/unicase"
)

// Step is one parsed pipeline operation. Only the fields the operation
// uses are meaningful.
type Step struct {
	Op     Op
	Text   string
	Needle string
	Target string
	Index  int
	Count  int

	// Set overrides the trim set for trim, ltrim and rtrim. Empty means the
	// engine's trim set.
	Set string
}

// Pipeline is an ordered list of steps.
type Pipeline struct {
	Name  string
	Steps []Step
}

// ParseFile reads and parses a pipeline document.
func ParseFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a pipeline document.
func Parse(data []byte) (*Pipeline, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidPipeline)
	}
	root := gjson.ParseBytes(data)
	steps := root.Get("steps")
	if !steps.IsArray() {
		return nil, fmt.Errorf("%w: steps must be an array", ErrInvalidPipeline)
	}

	p := &Pipeline{Name: root.Get("name").String()}
	for i, raw := range steps.Array() {
		step, err := parseStep(i, raw)
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, step)
	}
	return p, nil
}

func parseStep(index int, raw gjson.Result) (Step, error) {
	if !raw.IsObject() {
		return Step{}, &StepError{Index: index, Err: ErrInvalidPipeline}
	}
	op := Op(raw.Get("op").String())
	if op == "" {
		return Step{}, &StepError{Index: index, Field: "op", Err: ErrMissingField}
	}
	if !op.Valid() {
		return Step{}, &StepError{Index: index, Op: op, Err: ErrUnknownOp}
	}

	for _, f := range opFields[op] {
		v := raw.Get(f.name)
		if !v.Exists() {
			return Step{}, &StepError{Index: index, Op: op, Field: f.name, Err: ErrMissingField}
		}
		if f.numeric && v.Type != gjson.Number || !f.numeric && v.Type != gjson.String {
			return Step{}, &StepError{Index: index, Op: op, Field: f.name, Err: ErrFieldType}
		}
	}
	if set := raw.Get("set"); set.Exists() && set.Type != gjson.String {
		return Step{}, &StepError{Index: index, Op: op, Field: "set", Err: ErrFieldType}
	}

	return Step{
		Op:     op,
		Text:   raw.Get("text").String(),
		Needle: raw.Get("needle").String(),
		Target: raw.Get("target").String(),
		Index:  int(raw.Get("index").Int()),
		Count:  int(raw.Get("count").Int()),
		Set:    raw.Get("set").String(),
	}, nil
}

// StepResult records what a step did.
type StepResult struct {
	Op Op

	// OK is false when the String rejected the operation as a no-op.
	OK bool

	// Replaced counts replacements made by a replace step.
	Replaced int

	// Length is the content length after the step.
	Length int
}

// Result summarises a pipeline run.
type Result struct {
	Pipeline string
	Input    string
	Output   string
	Capacity int
	Hash     uint32
	Replaced int
	Steps    []StepResult
}

// Run applies every step to s in order and returns a summary.
func (p *Pipeline) Run(e *engine.Engine, s *str.String) *Result {
	res := &Result{
		Pipeline: p.Name,
		Input:    s.String(),
		Steps:    make([]StepResult, 0, len(p.Steps)),
	}

	for i, step := range p.Steps {
		sr := apply(e, s, step)
		sr.Length = s.Len()
		res.Replaced += sr.Replaced
		res.Steps = append(res.Steps, sr)

		e.Logger().WithFields(logrus.Fields{
			"step":   i,
			"op":     step.Op,
			"ok":     sr.OK,
			"length": sr.Length,
		}).Debug("pipeline step")
	}

	res.Output = s.String()
	res.Capacity = s.Cap()
	res.Hash = s.Hash()
	return res
}

func apply(e *engine.Engine, s *str.String, step Step) StepResult {
	sr := StepResult{Op: step.Op, OK: true}
	trimSet := step.Set
	if trimSet == "" {
		trimSet = e.TrimSet()
	}

	switch step.Op {
	case OpAssign:
		s.Assign(step.Text)
	case OpAppend:
		s.Append(step.Text)
	case OpPrepend:
		sr.OK = s.Insert(0, step.Text)
	case OpInsert:
		sr.OK = s.Insert(step.Index, step.Text)
	case OpErase:
		sr.OK = s.Erase(step.Index, step.Count)
	case OpReplace:
		sr.Replaced = s.Replace(step.Needle, step.Target)
	case OpTrim:
		s.TrimChars(trimSet)
	case OpLTrim:
		s.LTrimChars(trimSet)
	case OpRTrim:
		s.RTrimChars(trimSet)
	case OpLower:
		s.Lowercase()
	case OpUpper:
		s.Uppercase()
	case OpUnicodeUpper:
		s.Assign(unicase.StrToUpper(s.String()))
	case OpFullUpper:
		s.Assign(unicase.FullUpper(s.String()))
	default:
		sr.OK = false
	}
	return sr
}
