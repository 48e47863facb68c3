package lispy

import "t73f.de/r/zero/set"

// Environment maintains a mapping between symbol names and values,
// chained to a parent environment for lexical scoping. It is the parallel
// name/value-array representation spec.md §9 calls "adequate for small
// programs", rather than the teacher's map-backed root/child split — the
// spec pins this representation down explicitly, so the map-based
// Environment of t73f.de/r/sx is not reused here (see DESIGN.md).
type Environment struct {
	parent *Environment
	names  []string
	vals   []*Value
}

// NewEnvironment creates an environment with the given parent. A nil
// parent marks the root environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent}
}

// Parent returns the environment's parent, or nil at the root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent rewires e's parent link. Used by the call machinery to set a
// closure's local environment to look up into the caller's environment
// at the call site (spec.md §4.6).
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// IsRoot reports whether e has no parent.
func (e *Environment) IsRoot() bool { return e.parent == nil }

func (e *Environment) indexOf(name string) int {
	for i, n := range e.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Get resolves name by scanning e's local bindings, then delegating to
// the parent chain. It returns a deep copy of the stored value so the
// caller can freely mutate the result, or an Err value if name is
// unbound anywhere in the chain.
func (e *Environment) Get(name string) *Value {
	for env := e; env != nil; env = env.parent {
		if i := env.indexOf(name); i >= 0 {
			return env.vals[i].Copy()
		}
	}
	return NewErr("unbound symbol '%s'", name)
}

// Put inserts or replaces a binding in e's local frame only, storing a
// deep copy of value.
func (e *Environment) Put(name string, value *Value) {
	if i := e.indexOf(name); i >= 0 {
		e.vals[i] = value.Copy()
		return
	}
	e.names = append(e.names, name)
	e.vals = append(e.vals, value.Copy())
}

// Root walks the parent chain up to the root environment, the same
// traversal the teacher's sx.RootEnv performs.
func (e *Environment) Root() *Environment {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Def walks up to the root environment and Puts the binding there, as
// the `def` builtin requires.
func (e *Environment) Def(name string, value *Value) {
	e.Root().Put(name, value)
}

// Copy returns a new environment with the same parent link and deep
// copies of every local binding.
func (e *Environment) Copy() *Environment {
	cp := &Environment{
		parent: e.parent,
		names:  append([]string(nil), e.names...),
		vals:   make([]*Value, len(e.vals)),
	}
	for i, v := range e.vals {
		cp.vals[i] = v.Copy()
	}
	return cp
}

// HasDuplicates reports whether names contains any repeated entry, using
// the same set-based dedup idiom the teacher uses in sxbuiltins/let.go to
// count unique binding symbols.
func HasDuplicates(names []string) bool {
	return set.New(names...).Length() != len(names)
}
