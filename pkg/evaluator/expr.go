package evaluator

import (
	"fmt"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
)

// evalExpr resolves an expression node to a runtime value. Evaluation is
// strictly left-then-right and both operands of a binary operator are
// evaluated before any type check is applied.
func (ev *evaluator) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return NewNumber(e.Value), nil
	case *ast.BooleanLiteral:
		return NewBoolean(e.Value), nil
	case *ast.VariableRef:
		val, ok := ev.vars.Get(e.Name)
		if !ok {
			return nil, ev.undefinedVariable(e.Name, e.Span)
		}
		return val, nil
	case *ast.QueryExpr:
		return ev.evalQuery(e), nil
	case *ast.BinaryExpr:
		return ev.evalBinary(e)
	default:
		span := expr.NodeSpan()
		return nil, &RuntimeError{
			Code:    diagnostics.EType,
			Message: fmt.Sprintf("unhandled expression %s", expr.Kind()),
			Span:    &span,
		}
	}
}

func (ev *evaluator) evalQuery(e *ast.QueryExpr) Value {
	switch e.Query {
	case ast.QueryXCor:
		return NewNumber(ev.turtle.XCor())
	case ast.QueryYCor:
		return NewNumber(ev.turtle.YCor())
	case ast.QueryHeading:
		return NewNumber(ev.turtle.Heading())
	default:
		return NewNumber(float64(ev.turtle.Color()))
	}
}

func (ev *evaluator) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return ev.applyArithmetic(e, left, right)
	case ast.OpEq, ast.OpNe:
		return ev.applyEquality(e, left, right)
	case ast.OpGt, ast.OpLt:
		return ev.applyComparison(e, left, right)
	default: // AND, OR
		return ev.applyLogical(e, left, right)
	}
}

func (ev *evaluator) applyArithmetic(e *ast.BinaryExpr, left, right Value) (Value, error) {
	l, r, err := ev.bothNumbers(e, left, right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.OpAdd:
		return NewNumber(l + r), nil
	case ast.OpSub:
		return NewNumber(l - r), nil
	case ast.OpMul:
		return NewNumber(l * r), nil
	default:
		if r == 0 {
			span := e.NodeSpan()
			return nil, &RuntimeError{
				Code:    diagnostics.EDivZero,
				Message: "division by zero",
				Span:    &span,
			}
		}
		return NewNumber(l / r), nil
	}
}

// applyEquality compares two operands of the same kind. Numbers compare
// numerically, booleans by equality; a kind mismatch is an error, never a
// false result.
func (ev *evaluator) applyEquality(e *ast.BinaryExpr, left, right Value) (Value, error) {
	var equal bool
	switch l := left.(type) {
	case Number:
		r, ok := right.(Number)
		if !ok {
			return nil, ev.typeMismatch(e, left, right)
		}
		equal = l.Value == r.Value
	case Boolean:
		r, ok := right.(Boolean)
		if !ok {
			return nil, ev.typeMismatch(e, left, right)
		}
		equal = l.Value == r.Value
	}
	if e.Op == ast.OpNe {
		equal = !equal
	}
	return NewBoolean(equal), nil
}

func (ev *evaluator) applyComparison(e *ast.BinaryExpr, left, right Value) (Value, error) {
	l, r, err := ev.bothNumbers(e, left, right)
	if err != nil {
		return nil, err
	}
	if e.Op == ast.OpGt {
		return NewBoolean(l > r), nil
	}
	return NewBoolean(l < r), nil
}

// applyLogical evaluates AND/OR. Both operands are already evaluated by
// the caller; the grammar permits no side effects inside expressions, so
// short-circuiting is deliberately absent.
func (ev *evaluator) applyLogical(e *ast.BinaryExpr, left, right Value) (Value, error) {
	l, ok := left.(Boolean)
	if !ok {
		return nil, ev.typeMismatch(e, left, right)
	}
	r, ok := right.(Boolean)
	if !ok {
		return nil, ev.typeMismatch(e, left, right)
	}
	if e.Op == ast.OpAnd {
		return NewBoolean(l.Value && r.Value), nil
	}
	return NewBoolean(l.Value || r.Value), nil
}

func (ev *evaluator) bothNumbers(e *ast.BinaryExpr, left, right Value) (float64, float64, error) {
	l, ok := left.(Number)
	if !ok {
		return 0, 0, ev.typeMismatch(e, left, right)
	}
	r, ok := right.(Number)
	if !ok {
		return 0, 0, ev.typeMismatch(e, left, right)
	}
	return l.Value, r.Value, nil
}

func (ev *evaluator) typeMismatch(e *ast.BinaryExpr, left, right Value) error {
	span := e.NodeSpan()
	return &RuntimeError{
		Code:    diagnostics.EType,
		Message: fmt.Sprintf("operator %s cannot be applied to %s and %s", e.Op, TypeName(left), TypeName(right)),
		Span:    &span,
	}
}

// evalNumber evaluates an expression that must yield a number.
func (ev *evaluator) evalNumber(expr ast.Expr, operation string) (float64, error) {
	val, err := ev.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	num, ok := val.(Number)
	if !ok {
		span := expr.NodeSpan()
		return 0, &RuntimeError{
			Code:    diagnostics.EType,
			Message: fmt.Sprintf("%s expects a number, got %s", operation, TypeName(val)),
			Span:    &span,
		}
	}
	return num.Value, nil
}

// evalBoolean evaluates an expression that must yield a boolean.
func (ev *evaluator) evalBoolean(expr ast.Expr, operation string) (bool, error) {
	val, err := ev.evalExpr(expr)
	if err != nil {
		return false, err
	}
	b, ok := val.(Boolean)
	if !ok {
		span := expr.NodeSpan()
		return false, &RuntimeError{
			Code:    diagnostics.EType,
			Message: fmt.Sprintf("%s condition must be a boolean, got %s", operation, TypeName(val)),
			Span:    &span,
		}
	}
	return b.Value, nil
}
