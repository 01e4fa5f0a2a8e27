// Package runtime provides the top-level interpreter orchestrator wiring
// parser, validator, and evaluator together.
package runtime

import (
	"context"
	"strings"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/evaluator"
	"github.com/gologo-lang/gologo/pkg/formatter"
	"github.com/gologo-lang/gologo/pkg/parser"
	"github.com/gologo-lang/gologo/pkg/turtle"
	"github.com/gologo-lang/gologo/pkg/validator"
)

// Result holds the outcome of a program execution.
type Result struct {
	Segments []turtle.Segment
	Turtle   *turtle.Turtle
}

// Runtime wires together all interpreter components.
type Runtime struct {
	width    int
	height   int
	maxSteps int
	validate bool
}

// Option is a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithCanvas sets the canvas dimensions. The turtle starts at the center.
func WithCanvas(width, height int) Option {
	return func(rt *Runtime) {
		rt.width = width
		rt.height = height
	}
}

// WithMaxSteps caps the number of executed commands. Zero disables the
// cap; an unbounded WHILE then runs until the context is cancelled.
func WithMaxSteps(n int) Option {
	return func(rt *Runtime) {
		rt.maxSteps = n
	}
}

// WithoutValidation skips the static validation pass before execution.
func WithoutValidation() Option {
	return func(rt *Runtime) {
		rt.validate = false
	}
}

// DefaultWidth and DefaultHeight are the canvas dimensions used when no
// option or config overrides them.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// New creates a new Runtime with the given options.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		width:    DefaultWidth,
		height:   DefaultHeight,
		validate: true,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Width returns the configured canvas width.
func (rt *Runtime) Width() int { return rt.width }

// Height returns the configured canvas height.
func (rt *Runtime) Height() int { return rt.height }

func (rt *Runtime) execOptions() evaluator.ExecOptions {
	return evaluator.ExecOptions{
		OriginX:  float64(rt.width) / 2,
		OriginY:  float64(rt.height) / 2,
		MaxSteps: rt.maxSteps,
	}
}

// Run parses, validates definitions, and executes a Logo program. The
// pre-pass covers definition errors only; undefined calls and arity
// mismatches surface when the call executes, so a call inside a branch
// that is never taken does not fail the run. On a runtime error the
// partial result is returned alongside the error.
func (rt *Runtime) Run(ctx context.Context, source, filename string) (*Result, error) {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return nil, &DiagnosticError{Diagnostics: diags}
	}

	if rt.validate {
		if vDiags := validator.ValidateDefinitions(program); len(vDiags) > 0 {
			return nil, &DiagnosticError{Diagnostics: vDiags}
		}
	}

	result, err := evaluator.Execute(ctx, program, rt.execOptions())
	res := &Result{}
	if result != nil {
		res.Segments = result.Segments
		res.Turtle = result.Turtle
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

// Check parses and validates a program without executing it. Unlike the
// pre-pass in Run, Check also resolves calls and arities across the whole
// file, including code execution would never reach.
func (rt *Runtime) Check(source, filename string) []diagnostics.Diagnostic {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return diags
	}
	return validator.Validate(program)
}

// Format parses and formats a program.
func (rt *Runtime) Format(source, filename string) (string, error) {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return "", &DiagnosticError{Diagnostics: diags}
	}
	return formatter.Format(program), nil
}

// Parse exposes the parse result for AST inspection front ends.
func (rt *Runtime) Parse(source, filename string) (*ast.Program, []diagnostics.Diagnostic) {
	return parser.Parse(source, filename)
}

// DiagnosticError wraps parse or validation diagnostics as an error.
type DiagnosticError struct {
	Diagnostics []diagnostics.Diagnostic
}

func (e *DiagnosticError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, "; ")
}
