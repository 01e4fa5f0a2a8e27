package parser_test

import (
	"testing"

	"github.com/gologo-lang/gologo/pkg/parser"
)

// FuzzParse feeds random inputs to the parser to catch panics.
// The parser should never panic; invalid input must come back as diagnostics.
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge-case Logo programs
	seeds := []string{
		// Minimal programs
		`PENDOWN FORWARD 100`,
		`PENUP`,
		// Variables
		`MAKE "X 5 ADDASSIGN "X 3 FORWARD :X`,
		`MAKE "B "TRUE`,
		// Prefix expressions
		`FORWARD + 5 * 2 3`,
		`FORWARD / 100 4`,
		`MAKE "C AND TRUE OR FALSE TRUE`,
		// Control flow
		`IF EQ 1 1 [ FORWARD 50 ]`,
		`WHILE LT :I 10 [ ADDASSIGN "I 1 ]`,
		`WHILE TRUE [ IF TRUE [ FORWARD 1 ] ]`,
		// Procedures
		`TO SQUARE :SIDE FORWARD :SIDE RIGHT 90 END SQUARE 50`,
		`TO HOME SETX 0 SETY 0 END HOME`,
		// Queries
		`SETX XCOR SETY YCOR SETHEADING HEADING SETPENCOLOR COLOR`,
		// Comments
		`// comment
FORWARD 10`,
		// Edge cases
		``,
		`   `,
		`END`,
		`TO`,
		`[`,
		`]`,
		`IF TRUE [`,
		`TO A TO B END END`,
		`MAKE`,
		`FORWARD`,
		`42`,
		`"X`,
		`:X`,
		`+ 1`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// parser.Parse should never panic, regardless of input.
		// It may return diagnostics or a nil program, but should not crash.
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("parser.Parse panicked on input %q: %v", input, r)
				}
			}()
			parser.Parse(input, "fuzz.lg")
		}()
	})
}
