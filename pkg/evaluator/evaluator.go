package evaluator

import (
	"context"
	"fmt"
	"strings"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/turtle"
)

// RuntimeError represents a terminal runtime error. Execution aborts at
// the point it is raised; nothing is caught and retried internally.
type RuntimeError struct {
	Code    string
	Message string
	Span    *ast.Span
	Hint    string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Diag converts the error into a displayable diagnostic.
func (e *RuntimeError) Diag() diagnostics.Diagnostic {
	return diagnostics.MakeDiag(e.Code, e.Message, e.Span, e.Hint)
}

// ExecOptions configures program execution.
type ExecOptions struct {
	// OriginX, OriginY position the turtle at run start, normally the
	// canvas center.
	OriginX float64
	OriginY float64
	// MaxSteps aborts the run after this many executed commands.
	// Zero means unlimited; the interpreter core imposes no cap itself.
	MaxSteps int
}

// ExecResult holds the outcome of a program execution. On error the
// segments emitted before the failure are still present, but callers must
// not treat them as a complete trace.
type ExecResult struct {
	Segments []turtle.Segment
	Turtle   *turtle.Turtle
}

type evaluator struct {
	ctx      context.Context
	opts     ExecOptions
	vars     *Vars
	procs    *Procs
	turtle   *turtle.Turtle
	segments []turtle.Segment
	steps    int
}

func newEvaluator(ctx context.Context, opts ExecOptions) *evaluator {
	return &evaluator{
		ctx:    ctx,
		opts:   opts,
		vars:   NewVars(),
		procs:  NewProcs(),
		turtle: turtle.New(opts.OriginX, opts.OriginY),
	}
}

func (ev *evaluator) result() *ExecResult {
	return &ExecResult{Segments: ev.segments, Turtle: ev.turtle}
}

// Execute runs a parsed program and returns the segment trace plus the
// final turtle state. The result is non-nil even on error so callers can
// inspect the partial trace.
func Execute(ctx context.Context, program *ast.Program, opts ExecOptions) (*ExecResult, error) {
	ev := newEvaluator(ctx, opts)
	if err := ev.executeBlock(program.Commands); err != nil {
		return ev.result(), err
	}
	return ev.result(), nil
}

func (ev *evaluator) executeBlock(cmds []ast.Command) error {
	for _, cmd := range cmds {
		if err := ev.executeCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) executeCommand(cmd ast.Command) error {
	ev.steps++
	if ev.opts.MaxSteps > 0 && ev.steps > ev.opts.MaxSteps {
		span := cmd.NodeSpan()
		return &RuntimeError{
			Code:    diagnostics.EStepBudget,
			Message: fmt.Sprintf("step budget exceeded (max %d)", ev.opts.MaxSteps),
			Span:    &span,
		}
	}

	switch c := cmd.(type) {
	case *ast.PenCmd:
		if c.Down {
			ev.turtle.PenDown()
		} else {
			ev.turtle.PenUp()
		}
		return nil
	case *ast.MoveCmd:
		return ev.executeMove(c)
	case *ast.MakeCmd:
		return ev.executeMake(c)
	case *ast.AddAssignCmd:
		return ev.executeAddAssign(c)
	case *ast.IfCmd:
		return ev.executeIf(c)
	case *ast.WhileCmd:
		return ev.executeWhile(c)
	case *ast.ProcDef:
		return ev.executeProcDef(c)
	case *ast.ProcCall:
		return ev.executeProcCall(c)
	default:
		span := cmd.NodeSpan()
		return &RuntimeError{
			Code:    diagnostics.EParse,
			Message: fmt.Sprintf("unhandled command %s", cmd.Kind()),
			Span:    &span,
		}
	}
}

func (ev *evaluator) executeMove(c *ast.MoveCmd) error {
	arg, err := ev.evalNumber(c.Arg, string(c.Move))
	if err != nil {
		return err
	}

	switch c.Move {
	case ast.MoveForward:
		if seg, drawn := ev.turtle.Forward(arg); drawn {
			ev.segments = append(ev.segments, seg)
		}
	case ast.MoveBack:
		if seg, drawn := ev.turtle.Back(arg); drawn {
			ev.segments = append(ev.segments, seg)
		}
	case ast.MoveLeft:
		ev.turtle.Left(arg)
	case ast.MoveRight:
		ev.turtle.Right(arg)
	case ast.MoveTurn:
		ev.turtle.Turn(arg)
	case ast.MoveSetHeading:
		ev.turtle.SetHeading(arg)
	case ast.MoveSetX:
		ev.turtle.SetX(arg)
	case ast.MoveSetY:
		ev.turtle.SetY(arg)
	case ast.MoveSetColor:
		if !turtle.ValidColor(arg) {
			span := c.NodeSpan()
			return &RuntimeError{
				Code:    diagnostics.EColor,
				Message: fmt.Sprintf("invalid pen color %s: expected an integer between 0 and %d", FormatValue(NewNumber(arg)), turtle.PaletteSize-1),
				Span:    &span,
			}
		}
		ev.turtle.SetColor(uint8(arg))
	}
	return nil
}

func (ev *evaluator) executeMake(c *ast.MakeCmd) error {
	val, err := ev.evalExpr(c.Value)
	if err != nil {
		return err
	}
	ev.vars.Set(c.Name, val)
	return nil
}

func (ev *evaluator) executeAddAssign(c *ast.AddAssignCmd) error {
	current, ok := ev.vars.Get(c.Name)
	if !ok {
		return ev.undefinedVariable(c.Name, c.NodeSpan())
	}
	currentNum, ok := current.(Number)
	if !ok {
		span := c.NodeSpan()
		return &RuntimeError{
			Code:    diagnostics.EType,
			Message: fmt.Sprintf("ADDASSIGN requires a number variable, but :%s holds a %s", c.Name, TypeName(current)),
			Span:    &span,
		}
	}
	val, err := ev.evalNumber(c.Value, "ADDASSIGN")
	if err != nil {
		return err
	}
	ev.vars.Set(c.Name, NewNumber(currentNum.Value+val))
	return nil
}

func (ev *evaluator) executeIf(c *ast.IfCmd) error {
	cond, err := ev.evalBoolean(c.Cond, "IF")
	if err != nil {
		return err
	}
	if !cond {
		return nil
	}
	return ev.executeBlock(c.Body)
}

func (ev *evaluator) executeWhile(c *ast.WhileCmd) error {
	for {
		if err := ev.ctx.Err(); err != nil {
			span := c.NodeSpan()
			return &RuntimeError{
				Code:    diagnostics.EStepBudget,
				Message: fmt.Sprintf("execution cancelled: %v", err),
				Span:    &span,
			}
		}
		cond, err := ev.evalBoolean(c.Cond, "WHILE")
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		if err := ev.executeBlock(c.Body); err != nil {
			return err
		}
	}
}

func (ev *evaluator) executeProcDef(c *ast.ProcDef) error {
	if _, exists := ev.procs.Get(c.Name); exists {
		span := c.NodeSpan()
		return &RuntimeError{
			Code:    diagnostics.ERedefined,
			Message: fmt.Sprintf("procedure '%s' is already defined", c.Name),
			Span:    &span,
		}
	}
	ev.procs.Define(&Procedure{Name: c.Name, Params: c.Params, Body: c.Body})
	return nil
}

func (ev *evaluator) executeProcCall(c *ast.ProcCall) error {
	span := c.NodeSpan()

	proc, ok := ev.procs.Get(c.Name)
	if !ok {
		return &RuntimeError{
			Code:    diagnostics.EUndefProc,
			Message: fmt.Sprintf("undefined procedure '%s'", c.Name),
			Span:    &span,
		}
	}
	// Reject recursion, direct or indirect, before any argument is
	// evaluated: a failing call must have no observable effect.
	if ev.procs.Active(c.Name) {
		return &RuntimeError{
			Code:    diagnostics.ERecursion,
			Message: fmt.Sprintf("procedure '%s' calls itself: recursion is not allowed", c.Name),
			Span:    &span,
		}
	}
	if len(c.Args) != len(proc.Params) {
		return &RuntimeError{
			Code:    diagnostics.EArity,
			Message: fmt.Sprintf("procedure '%s' expects %d argument(s), got %d", c.Name, len(proc.Params), len(c.Args)),
			Span:    &span,
		}
	}

	// Arguments are evaluated eagerly, left to right, in the caller's
	// context, then merged into the flat global store. Parameters
	// overwrite same-named globals and are not restored on return.
	for i, arg := range c.Args {
		val, err := ev.evalExpr(arg)
		if err != nil {
			return err
		}
		ev.vars.Set(proc.Params[i], val)
	}

	ev.procs.Push(c.Name)
	err := ev.executeBlock(proc.Body)
	ev.procs.Pop()
	return err
}

func (ev *evaluator) undefinedVariable(name string, span ast.Span) error {
	hint := ""
	if names := ev.vars.Names(); len(names) > 0 {
		hint = "defined variables: " + strings.Join(names, ", ")
	}
	return &RuntimeError{
		Code:    diagnostics.EUndefVar,
		Message: fmt.Sprintf("undefined variable :%s", name),
		Span:    &span,
		Hint:    hint,
	}
}
