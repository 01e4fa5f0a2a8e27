package evaluator

import "github.com/gologo-lang/gologo/pkg/ast"

// Procedure is a registered TO ... END definition.
type Procedure struct {
	Name   string
	Params []string
	Body   []ast.Command
}

// Procs is the global procedure table plus the active call-frame stack.
// Frames hold only the procedure names currently executing; they exist to
// reject recursion, not to scope variables.
type Procs struct {
	table  map[string]*Procedure
	frames []string
}

// NewProcs creates an empty procedure table.
func NewProcs() *Procs {
	return &Procs{table: make(map[string]*Procedure)}
}

// Define registers a procedure. Redefinition is rejected by the caller
// before Define is reached; Define itself always succeeds.
func (p *Procs) Define(proc *Procedure) {
	p.table[proc.Name] = proc
}

// Get looks up a procedure by name.
func (p *Procs) Get(name string) (*Procedure, bool) {
	proc, ok := p.table[name]
	return proc, ok
}

// Active reports whether the named procedure is anywhere on the call
// stack. Used to reject direct and indirect recursion.
func (p *Procs) Active(name string) bool {
	for _, frame := range p.frames {
		if frame == name {
			return true
		}
	}
	return false
}

// Push records entry into a procedure call.
func (p *Procs) Push(name string) {
	p.frames = append(p.frames, name)
}

// Pop records return from the innermost call.
func (p *Procs) Pop() {
	if len(p.frames) > 0 {
		p.frames = p.frames[:len(p.frames)-1]
	}
}
