// Package formatter implements the canonical Logo source formatter.
// Prefix expressions have no precedence to worry about; formatting is a
// direct walk of the tree, one command per line, blocks indented.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gologo-lang/gologo/pkg/ast"
)

const indent = "  "

// Format pretty-prints a parsed program back to canonical source.
func Format(program *ast.Program) string {
	var lines []string
	for _, cmd := range program.Commands {
		lines = append(lines, formatCommand(cmd, 0)...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatCommand(cmd ast.Command, depth int) []string {
	pad := strings.Repeat(indent, depth)

	switch c := cmd.(type) {
	case *ast.PenCmd:
		return []string{pad + c.Kind()}
	case *ast.MoveCmd:
		return []string{pad + string(c.Move) + " " + FormatExpr(c.Arg)}
	case *ast.MakeCmd:
		return []string{fmt.Sprintf(`%sMAKE "%s %s`, pad, c.Name, FormatExpr(c.Value))}
	case *ast.AddAssignCmd:
		return []string{fmt.Sprintf(`%sADDASSIGN "%s %s`, pad, c.Name, FormatExpr(c.Value))}
	case *ast.IfCmd:
		return formatBlockCommand(pad, "IF "+FormatExpr(c.Cond), c.Body, depth)
	case *ast.WhileCmd:
		return formatBlockCommand(pad, "WHILE "+FormatExpr(c.Cond), c.Body, depth)
	case *ast.ProcDef:
		header := pad + "TO " + c.Name
		for _, param := range c.Params {
			header += " :" + param
		}
		lines := []string{header}
		for _, bodyCmd := range c.Body {
			lines = append(lines, formatCommand(bodyCmd, depth+1)...)
		}
		return append(lines, pad+"END")
	case *ast.ProcCall:
		line := pad + c.Name
		for _, arg := range c.Args {
			line += " " + FormatExpr(arg)
		}
		return []string{line}
	default:
		return []string{pad + c.Kind()}
	}
}

func formatBlockCommand(pad, header string, body []ast.Command, depth int) []string {
	lines := []string{pad + header + " ["}
	for _, cmd := range body {
		lines = append(lines, formatCommand(cmd, depth+1)...)
	}
	return append(lines, pad+"]")
}

// FormatExpr renders an expression in canonical prefix form.
func FormatExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return `"` + strconv.FormatFloat(e.Value, 'f', -1, 64)
	case *ast.BooleanLiteral:
		if e.Value {
			return `"TRUE`
		}
		return `"FALSE`
	case *ast.VariableRef:
		return ":" + e.Name
	case *ast.QueryExpr:
		return string(e.Query)
	case *ast.BinaryExpr:
		return string(e.Op) + " " + FormatExpr(e.Left) + " " + FormatExpr(e.Right)
	default:
		return e.Kind()
	}
}
