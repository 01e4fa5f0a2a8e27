package evaluator

import (
	"context"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/turtle"
)

// Interp is a persistent interpreter instance. Unlike Execute, which runs
// one whole program, an Interp keeps its variable store, procedure table,
// turtle, and trace alive across calls so a front end can feed it one
// parsed line at a time.
type Interp struct {
	ev *evaluator
}

// NewInterp creates a fresh interpreter instance.
func NewInterp(ctx context.Context, opts ExecOptions) *Interp {
	return &Interp{ev: newEvaluator(ctx, opts)}
}

// Execute runs a program fragment against the shared state. On error the
// run state remains whatever the failing command left behind, matching
// whole-program semantics.
func (i *Interp) Execute(program *ast.Program) error {
	return i.ev.executeBlock(program.Commands)
}

// Segments returns the trace emitted so far.
func (i *Interp) Segments() []turtle.Segment {
	return i.ev.segments
}

// Turtle returns the live turtle state.
func (i *Interp) Turtle() *turtle.Turtle {
	return i.ev.turtle
}
