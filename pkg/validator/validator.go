// Package validator implements static validation of parsed Logo programs.
// Definition checks (redefined procedures, empty or duplicate parameter
// lists) guard every run; the deeper call analysis is a lint-only pass,
// since undefined-call and arity errors belong to execution time and must
// not fire on code that never runs.
package validator

import (
	"fmt"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
)

type validator struct {
	procs map[string]*ast.ProcDef
	diags []diagnostics.Diagnostic
}

// ValidateDefinitions checks procedure definitions without executing:
// redefinitions, empty names, and duplicate parameter names. Calls are
// not resolved here; a call to a missing procedure only fails when it
// executes.
func ValidateDefinitions(program *ast.Program) []diagnostics.Diagnostic {
	v := &validator{procs: make(map[string]*ast.ProcDef)}
	v.collectDefs(program.Commands)
	return v.diags
}

// Validate runs the definition checks plus call analysis: calls to
// procedures the program never defines, and argument-count mismatches.
// Stricter than execution requires, intended for lint front ends.
func Validate(program *ast.Program) []diagnostics.Diagnostic {
	v := &validator{procs: make(map[string]*ast.ProcDef)}
	v.collectDefs(program.Commands)
	v.checkCalls(program.Commands)
	return v.diags
}

func (v *validator) addError(code, msg string, span ast.Span) {
	v.diags = append(v.diags, diagnostics.MakeDiag(code, msg, &span, ""))
}

func (v *validator) collectDefs(cmds []ast.Command) {
	for _, cmd := range cmds {
		def, ok := cmd.(*ast.ProcDef)
		if !ok {
			continue
		}
		if def.Name == "" {
			v.addError(diagnostics.EParse, "procedure name must not be empty", def.Span)
			continue
		}
		if _, exists := v.procs[def.Name]; exists {
			v.addError(diagnostics.ERedefined,
				fmt.Sprintf("procedure '%s' is defined more than once", def.Name), def.Span)
			continue
		}
		v.procs[def.Name] = def

		seen := make(map[string]bool)
		for _, param := range def.Params {
			if seen[param] {
				v.addError(diagnostics.EParse,
					fmt.Sprintf("procedure '%s' declares parameter '%s' more than once", def.Name, param), def.Span)
			}
			seen[param] = true
		}
	}
}

func (v *validator) checkCalls(cmds []ast.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case *ast.ProcCall:
			def, ok := v.procs[c.Name]
			if !ok {
				v.addError(diagnostics.EUndefProc,
					fmt.Sprintf("call to undefined procedure '%s'", c.Name), c.Span)
				continue
			}
			if len(c.Args) != len(def.Params) {
				v.addError(diagnostics.EArity,
					fmt.Sprintf("procedure '%s' expects %d argument(s), got %d", c.Name, len(def.Params), len(c.Args)), c.Span)
			}
		case *ast.IfCmd:
			v.checkCalls(c.Body)
		case *ast.WhileCmd:
			v.checkCalls(c.Body)
		case *ast.ProcDef:
			v.checkCalls(c.Body)
		}
	}
}
