package evaluator_test

import (
	"context"
	"math"
	"testing"

	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/evaluator"
	"github.com/gologo-lang/gologo/pkg/parser"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// run parses and executes source with the turtle at (250,250), failing the
// test on any error.
func run(t *testing.T, source string) *evaluator.ExecResult {
	t.Helper()
	prog, diags := parser.Parse(source, "test.lg")
	if len(diags) > 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	result, err := evaluator.Execute(context.Background(), prog, evaluator.ExecOptions{OriginX: 250, OriginY: 250})
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	return result
}

// runErr parses and executes source expecting a runtime error with the
// given diagnostic code. The partial result is returned for inspection.
func runErr(t *testing.T, source, code string) (*evaluator.ExecResult, *evaluator.RuntimeError) {
	t.Helper()
	prog, diags := parser.Parse(source, "test.lg")
	if len(diags) > 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	result, err := evaluator.Execute(context.Background(), prog, evaluator.ExecOptions{OriginX: 250, OriginY: 250})
	if err == nil {
		t.Fatalf("expected a runtime error, got %d segment(s)", len(result.Segments))
	}
	re, ok := err.(*evaluator.RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if re.Code != code {
		t.Fatalf("expected error code %s, got %s (%s)", code, re.Code, re.Message)
	}
	return result, re
}

// ---- Movement and drawing ----

func TestPenUpMovesWithoutDrawing(t *testing.T) {
	result := run(t, "FORWARD 100")
	if len(result.Segments) != 0 {
		t.Fatalf("expected 0 segments with pen up, got %d", len(result.Segments))
	}
	if !almostEqual(result.Turtle.YCor(), 150) {
		t.Errorf("expected y=150, got %v", result.Turtle.YCor())
	}
}

func TestPenDownDraws(t *testing.T) {
	result := run(t, "PENDOWN FORWARD 100")
	if len(result.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Segments))
	}
	seg := result.Segments[0]
	if !almostEqual(seg.From.X, 250) || !almostEqual(seg.From.Y, 250) {
		t.Errorf("unexpected segment start (%v,%v)", seg.From.X, seg.From.Y)
	}
	if !almostEqual(seg.To.X, 250) || !almostEqual(seg.To.Y, 150) {
		t.Errorf("unexpected segment end (%v,%v)", seg.To.X, seg.To.Y)
	}
}

func TestForwardBackReturnsToStart(t *testing.T) {
	result := run(t, "SETHEADING 37 FORWARD 80 BACK 80")
	if !almostEqual(result.Turtle.XCor(), 250) || !almostEqual(result.Turtle.YCor(), 250) {
		t.Errorf("expected (250,250), got (%v,%v)", result.Turtle.XCor(), result.Turtle.YCor())
	}
}

func TestLeftRightRestoresHeading(t *testing.T) {
	result := run(t, "LEFT 35 RIGHT 35")
	if !almostEqual(result.Turtle.Heading(), 0) {
		t.Errorf("expected heading 0, got %v", result.Turtle.Heading())
	}
}

func TestSetXYTeleportWithPenDown(t *testing.T) {
	result := run(t, "PENDOWN SETX 10 SETY 20")
	if len(result.Segments) != 0 {
		t.Fatalf("SETX/SETY must never draw, got %d segments", len(result.Segments))
	}
	if result.Turtle.XCor() != 10 || result.Turtle.YCor() != 20 {
		t.Errorf("expected (10,20), got (%v,%v)", result.Turtle.XCor(), result.Turtle.YCor())
	}
}

func TestNegativeDistanceMovesBackwards(t *testing.T) {
	result := run(t, "FORWARD -50")
	if !almostEqual(result.Turtle.YCor(), 300) {
		t.Errorf("expected y=300, got %v", result.Turtle.YCor())
	}
}

// ---- Pen color ----

func TestSetPenColorValid(t *testing.T) {
	result := run(t, "SETPENCOLOR 0 SETPENCOLOR 15 SETPENCOLOR 4")
	if result.Turtle.Color() != 4 {
		t.Errorf("expected color 4, got %d", result.Turtle.Color())
	}
}

func TestSetPenColorOutOfRange(t *testing.T) {
	runErr(t, "SETPENCOLOR 16", diagnostics.EColor)
	runErr(t, "SETPENCOLOR -1", diagnostics.EColor)
}

func TestSetPenColorNonIntegral(t *testing.T) {
	runErr(t, "SETPENCOLOR 3.5", diagnostics.EColor)
}

func TestSegmentsCarryColorAtDrawTime(t *testing.T) {
	result := run(t, "PENDOWN SETPENCOLOR 2 FORWARD 10 SETPENCOLOR 9 FORWARD 10")
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.Segments[0].Color != 2 || result.Segments[1].Color != 9 {
		t.Errorf("expected colors 2 and 9, got %d and %d", result.Segments[0].Color, result.Segments[1].Color)
	}
}

// ---- Variables ----

func TestMakeAndAddAssign(t *testing.T) {
	result := run(t, `MAKE "X 5 ADDASSIGN "X 3 SETX :X`)
	if result.Turtle.XCor() != 8 {
		t.Errorf("expected x=8, got %v", result.Turtle.XCor())
	}
}

func TestMakeOverwrites(t *testing.T) {
	result := run(t, `MAKE "X 5 MAKE "X 9 SETX :X`)
	if result.Turtle.XCor() != 9 {
		t.Errorf("expected x=9, got %v", result.Turtle.XCor())
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, re := runErr(t, "FORWARD :NOPE", diagnostics.EUndefVar)
	if re.Span == nil {
		t.Error("expected a span on the error")
	}
}

func TestUndefinedVariableHintListsDefined(t *testing.T) {
	_, re := runErr(t, `MAKE "A 1 MAKE "B 2 FORWARD :C`, diagnostics.EUndefVar)
	if re.Hint == "" {
		t.Error("expected a hint listing defined variables")
	}
}

func TestAddAssignUndefined(t *testing.T) {
	runErr(t, `ADDASSIGN "NOPE 1`, diagnostics.EUndefVar)
}

func TestAddAssignBooleanVariable(t *testing.T) {
	runErr(t, `MAKE "B TRUE ADDASSIGN "B 1`, diagnostics.EType)
}

func TestVariableNamesCaseInsensitive(t *testing.T) {
	result := run(t, `MAKE "dist 42 SETX :DIST`)
	if result.Turtle.XCor() != 42 {
		t.Errorf("expected x=42, got %v", result.Turtle.XCor())
	}
}

// ---- Expressions ----

func TestArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"+ 2 3", 5},
		{"- 10 4", 6},
		{"* 6 7", 42},
		{"/ 100 4", 25},
		{"+ 1 * 2 3", 7},
		{"* + 1 2 + 3 4", 21},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result := run(t, "SETX "+tt.expr)
			if !almostEqual(result.Turtle.XCor(), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, result.Turtle.XCor())
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	runErr(t, "FORWARD / 1 0", diagnostics.EDivZero)
}

func TestDivisionByComputedZero(t *testing.T) {
	runErr(t, `MAKE "Z - 5 5 FORWARD / 1 :Z`, diagnostics.EDivZero)
}

func TestComparisons(t *testing.T) {
	result := run(t, "IF GT 2 1 [ PENDOWN FORWARD 1 ]")
	if len(result.Segments) != 1 {
		t.Errorf("GT 2 1 should be true, got %d segments", len(result.Segments))
	}
	result = run(t, "IF LT 2 1 [ PENDOWN FORWARD 1 ]")
	if len(result.Segments) != 0 {
		t.Errorf("LT 2 1 should be false, got %d segments", len(result.Segments))
	}
}

func TestEqualitySameKindOnly(t *testing.T) {
	runErr(t, "IF EQ 1 TRUE [ ]", diagnostics.EType)
	runErr(t, "IF NE FALSE 0 [ ]", diagnostics.EType)
}

func TestComparisonNumbersOnly(t *testing.T) {
	runErr(t, "IF GT TRUE FALSE [ ]", diagnostics.EType)
}

func TestLogicalBooleansOnly(t *testing.T) {
	runErr(t, "IF AND 1 2 [ ]", diagnostics.EType)
}

func TestLogicalNoShortCircuit(t *testing.T) {
	// The right operand is evaluated even when the left already decides
	// the result, so its errors always surface.
	runErr(t, "IF OR TRUE :UNDEF [ ]", diagnostics.EUndefVar)
	runErr(t, "IF AND FALSE :UNDEF [ ]", diagnostics.EUndefVar)
}

func TestLeftOperandErrorWins(t *testing.T) {
	// Left-to-right evaluation: the left operand's failure reports first.
	_, re := runErr(t, "FORWARD + :A :B", diagnostics.EUndefVar)
	if re.Message != "undefined variable :A" {
		t.Errorf("expected :A to fail first, got %q", re.Message)
	}
}

func TestQueries(t *testing.T) {
	result := run(t, "SETHEADING 90 SETPENCOLOR 5 MAKE \"H HEADING MAKE \"C COLOR SETX :H SETY :C")
	if result.Turtle.XCor() != 90 {
		t.Errorf("expected HEADING 90, got %v", result.Turtle.XCor())
	}
	if result.Turtle.YCor() != 5 {
		t.Errorf("expected COLOR 5, got %v", result.Turtle.YCor())
	}
}

func TestXCorYCorQueries(t *testing.T) {
	result := run(t, "SETX 30 SETY 40 MAKE \"X XCOR MAKE \"Y YCOR SETHEADING + :X :Y")
	if !almostEqual(result.Turtle.Heading(), 70) {
		t.Errorf("expected heading 70, got %v", result.Turtle.Heading())
	}
}

func TestMoveRequiresNumber(t *testing.T) {
	runErr(t, "FORWARD TRUE", diagnostics.EType)
}

func TestConditionRequiresBoolean(t *testing.T) {
	runErr(t, "IF 1 [ ]", diagnostics.EType)
	runErr(t, "WHILE 0 [ ]", diagnostics.EType)
}

// ---- Control flow ----

func TestIfTrueExecutesBody(t *testing.T) {
	result := run(t, "IF EQ 1 1 [ PENDOWN FORWARD 10 ]")
	if len(result.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Segments))
	}
}

func TestIfFalseSkipsBody(t *testing.T) {
	result := run(t, "IF EQ 1 2 [ PENDOWN FORWARD 10 ]")
	if len(result.Segments) != 0 {
		t.Fatalf("expected 0 segments, got %d", len(result.Segments))
	}
}

func TestWhileLoop(t *testing.T) {
	result := run(t, `MAKE "I 0 PENDOWN WHILE LT :I 5 [ FORWARD 10 ADDASSIGN "I 1 ]`)
	if len(result.Segments) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(result.Segments))
	}
}

func TestWhileConditionReevaluated(t *testing.T) {
	result := run(t, `MAKE "I 3 WHILE GT :I 0 [ ADDASSIGN "I -1 ] SETX :I`)
	if result.Turtle.XCor() != 0 {
		t.Errorf("expected i=0 after loop, got %v", result.Turtle.XCor())
	}
}

func TestWhileFalseNeverRuns(t *testing.T) {
	result := run(t, "WHILE FALSE [ PENDOWN FORWARD 10 ]")
	if len(result.Segments) != 0 {
		t.Fatalf("expected 0 segments, got %d", len(result.Segments))
	}
}

// ---- Procedures ----

func TestSquareProcedure(t *testing.T) {
	result := run(t, `
TO SQUARE :SIDE
  PENDOWN
  MAKE "I 0
  WHILE LT :I 4 [ FORWARD :SIDE RIGHT 90 ADDASSIGN "I 1 ]
END
SQUARE 50`)
	if len(result.Segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(result.Segments))
	}
	// Closed path: the turtle ends where it started.
	if !almostEqual(result.Turtle.XCor(), 250) || !almostEqual(result.Turtle.YCor(), 250) {
		t.Errorf("expected return to (250,250), got (%v,%v)", result.Turtle.XCor(), result.Turtle.YCor())
	}
	last := result.Segments[3]
	first := result.Segments[0]
	if !almostEqual(last.To.X, first.From.X) || !almostEqual(last.To.Y, first.From.Y) {
		t.Errorf("path not closed: last end (%v,%v), first start (%v,%v)",
			last.To.X, last.To.Y, first.From.X, first.From.Y)
	}
}

func TestProcedureParamsShareGlobalStore(t *testing.T) {
	// Parameters merge into the flat global store and survive the call.
	result := run(t, `
TO SETIT :V
  PENUP
END
SETIT 77
SETX :V`)
	if result.Turtle.XCor() != 77 {
		t.Errorf("expected param to persist as global, got %v", result.Turtle.XCor())
	}
}

func TestProcedureParamOverwritesGlobal(t *testing.T) {
	result := run(t, `
MAKE "V 1
TO SETIT :V
  PENUP
END
SETIT 99
SETX :V`)
	if result.Turtle.XCor() != 99 {
		t.Errorf("expected 99, got %v", result.Turtle.XCor())
	}
}

func TestProcedureDefinitionDoesNotExecuteBody(t *testing.T) {
	result := run(t, "TO DRAW PENDOWN FORWARD 10 END")
	if len(result.Segments) != 0 {
		t.Fatalf("defining must not draw, got %d segments", len(result.Segments))
	}
}

func TestUndefinedProcedure(t *testing.T) {
	runErr(t, "NOPE 1 2", diagnostics.EUndefProc)
}

func TestArityMismatch(t *testing.T) {
	runErr(t, "TO P :A :B PENUP END P 1", diagnostics.EArity)
	runErr(t, "TO Q PENUP END Q 1", diagnostics.EArity)
}

func TestProcedureRedefinition(t *testing.T) {
	runErr(t, "TO P PENUP END TO P PENDOWN END", diagnostics.ERedefined)
}

func TestDirectRecursionFails(t *testing.T) {
	result, _ := runErr(t, "TO LOOP PENDOWN FORWARD 10 LOOP END LOOP", diagnostics.ERecursion)
	// One iteration of the body runs before the recursive call is caught.
	if len(result.Segments) != 1 {
		t.Errorf("expected 1 segment before the failure, got %d", len(result.Segments))
	}
}

func TestIndirectRecursionFails(t *testing.T) {
	runErr(t, "TO B A END TO A B END A", diagnostics.ERecursion)
}

func TestRecursionCheckedBeforeArguments(t *testing.T) {
	// The recursive call is rejected before its argument is evaluated, so
	// the division by zero inside the argument never fires.
	_, re := runErr(t, "TO R :N R / 1 0 END R 1", diagnostics.ERecursion)
	if re.Code == diagnostics.EDivZero {
		t.Error("argument must not be evaluated for a recursive call")
	}
}

func TestNonRecursiveChainAllowed(t *testing.T) {
	result := run(t, `
TO LEG :D PENDOWN FORWARD :D END
TO TWICE :D LEG :D LEG :D END
TWICE 25`)
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
}

func TestSequentialCallsAllowed(t *testing.T) {
	// The active set shrinks on return: calling the same procedure twice
	// in sequence is not recursion.
	result := run(t, "TO LEG PENDOWN FORWARD 10 END LEG LEG")
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
}

func TestProcCallArgumentsLeftToRight(t *testing.T) {
	_, re := runErr(t, "TO P :A :B PENUP END P :X :Y", diagnostics.EUndefVar)
	if re.Message != "undefined variable :X" {
		t.Errorf("expected :X to fail first, got %q", re.Message)
	}
}

// ---- Errors abort execution ----

func TestErrorStopsExecution(t *testing.T) {
	result, _ := runErr(t, "PENDOWN FORWARD 10 SETPENCOLOR 99 FORWARD 10", diagnostics.EColor)
	if len(result.Segments) != 1 {
		t.Errorf("expected the trace to stop at the failure, got %d segments", len(result.Segments))
	}
}

// ---- Execution limits ----

func TestStepBudget(t *testing.T) {
	prog, diags := parser.Parse(`MAKE "I 0 WHILE LT :I 1000 [ ADDASSIGN "I 1 ]`, "test.lg")
	if len(diags) > 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	_, err := evaluator.Execute(context.Background(), prog, evaluator.ExecOptions{MaxSteps: 50})
	re, ok := err.(*evaluator.RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %v", err)
	}
	if re.Code != diagnostics.EStepBudget {
		t.Errorf("expected %s, got %s", diagnostics.EStepBudget, re.Code)
	}
}

func TestContextCancellation(t *testing.T) {
	prog, diags := parser.Parse("WHILE TRUE [ PENUP ]", "test.lg")
	if len(diags) > 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := evaluator.Execute(ctx, prog, evaluator.ExecOptions{})
	if err == nil {
		t.Fatal("expected cancellation to abort the loop")
	}
}
