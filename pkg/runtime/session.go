package runtime

import (
	"context"

	"github.com/gologo-lang/gologo/pkg/evaluator"
	"github.com/gologo-lang/gologo/pkg/turtle"
)

// Session is an incremental interpreter front end: each Eval call parses
// one source fragment and executes it against shared state, so variables,
// procedures, and the turtle persist across REPL lines. Static validation
// is skipped because definitions may arrive on later lines.
type Session struct {
	rt     *Runtime
	interp *evaluator.Interp
}

// NewSession creates a session backed by this runtime's configuration.
func (rt *Runtime) NewSession(ctx context.Context) *Session {
	return &Session{
		rt:     rt,
		interp: evaluator.NewInterp(ctx, rt.execOptions()),
	}
}

// Eval parses and executes one source fragment. A parse error leaves the
// session state untouched; a runtime error leaves behind whatever the
// failing command had already done, matching whole-program semantics.
func (s *Session) Eval(source, filename string) error {
	program, diags := s.rt.Parse(source, filename)
	if len(diags) > 0 {
		return &DiagnosticError{Diagnostics: diags}
	}
	return s.interp.Execute(program)
}

// Segments returns the trace emitted so far.
func (s *Session) Segments() []turtle.Segment {
	return s.interp.Segments()
}

// Turtle returns the live turtle state.
func (s *Session) Turtle() *turtle.Turtle {
	return s.interp.Turtle()
}
