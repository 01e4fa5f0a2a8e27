// Package evaluator implements the Logo dialect runtime: expression
// evaluation, the global variable and procedure tables, and the command
// executor that drives the turtle and collects the segment trace.
package evaluator

import "strconv"

// Value is the interface for all runtime values.
// Use the sealed marker method to restrict implementations to this package.
type Value interface {
	value() // sealed marker
}

// Number represents a numeric value.
type Number struct {
	Value float64
}

func (Number) value() {}

// Boolean represents a boolean value.
type Boolean struct {
	Value bool
}

func (Boolean) value() {}

// NewNumber creates a numeric value.
func NewNumber(n float64) Value {
	return Number{Value: n}
}

// NewBoolean creates a boolean value.
func NewBoolean(b bool) Value {
	return Boolean{Value: b}
}

// TypeName returns the kind name of a value for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// FormatValue renders a value the way the REPL prints it.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case Number:
		return strconv.FormatFloat(val.Value, 'f', -1, 64)
	case Boolean:
		if val.Value {
			return "TRUE"
		}
		return "FALSE"
	default:
		return "?"
	}
}
