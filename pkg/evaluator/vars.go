package evaluator

import "sort"

// Vars is the single global variable store. The language is deliberately
// flat-scoped: procedure parameters are merged into this same table.
type Vars struct {
	bindings map[string]Value
}

// NewVars creates an empty variable store.
func NewVars() *Vars {
	return &Vars{bindings: make(map[string]Value)}
}

// Get looks up a variable by name.
func (v *Vars) Get(name string) (Value, bool) {
	val, ok := v.bindings[name]
	return val, ok
}

// Set inserts or overwrites a binding.
func (v *Vars) Set(name string, val Value) {
	v.bindings[name] = val
}

// Names returns the defined variable names in sorted order, used for
// undefined-variable hints.
func (v *Vars) Names() []string {
	names := make([]string, 0, len(v.bindings))
	for name := range v.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
