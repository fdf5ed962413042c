// Package scope implements the lexical scope chain as an arena of frames
// addressed by index. Each frame holds its own bindings and the index of its
// parent; lookups walk parent indices iteratively.
package scope

import (
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// ID addresses a frame in an Arena.
type ID int

// NoParent is the parent of the root frame.
const NoParent ID = -1

// Binding is a stored value with its declared type. The type never changes
// after declaration.
type Binding struct {
	Value value.Value
	Type  value.Type
}

type frame struct {
	vars   map[string]Binding
	parent ID
}

// Arena owns every frame of one program run. Frames are released in LIFO
// order, matching block nesting.
type Arena struct {
	frames []frame
}

// NewArena returns an arena holding only the root frame.
func NewArena() *Arena {
	return &Arena{frames: []frame{{vars: make(map[string]Binding), parent: NoParent}}}
}

// Root returns the root frame.
func (a *Arena) Root() Scope {
	return Scope{arena: a, id: 0}
}

// Len returns the number of live frames.
func (a *Arena) Len() int {
	return len(a.frames)
}

// Scope is a handle to one frame of an Arena.
type Scope struct {
	arena *Arena
	id    ID
}

func (s Scope) ID() ID { return s.id }

// Parent returns the enclosing scope and false for the root.
func (s Scope) Parent() (Scope, bool) {
	p := s.arena.frames[s.id].parent
	if p == NoParent {
		return Scope{}, false
	}
	return Scope{arena: s.arena, id: p}, true
}

// Depth is the number of frames between s and the root.
func (s Scope) Depth() int {
	d := 0
	for p, ok := s.Parent(); ok; p, ok = p.Parent() {
		d++
	}
	return d
}

// Push creates a child frame of s.
func (s Scope) Push() Scope {
	a := s.arena
	a.frames = append(a.frames, frame{vars: make(map[string]Binding), parent: s.id})
	return Scope{arena: a, id: ID(len(a.frames) - 1)}
}

// Pop releases s and every frame created after it. The root is never
// released.
func (s Scope) Pop() {
	if s.id == 0 || int(s.id) >= len(s.arena.frames) {
		return
	}
	for i := int(s.id); i < len(s.arena.frames); i++ {
		s.arena.frames[i] = frame{}
	}
	s.arena.frames = s.arena.frames[:s.id]
}

// Declare creates name in this frame only. A missing value (KindNone) for an
// int or bool declaration is stored as Unassigned.
func (s Scope) Declare(name string, t value.Type, v value.Value) error {
	if s.IsLocal(name) {
		return diag.Errorf(diag.DuplicateNameError, "name %q is already declared in this scope", name)
	}
	if v.Kind() == value.KindNone && (t == value.Int || t == value.Bool) {
		v = value.Unassigned()
	}
	s.arena.frames[s.id].vars[name] = Binding{Value: v, Type: t}
	return nil
}

// Assign stores v into the nearest binding of name. Bindings declared eq
// accept any expression; others require t to equal the declared type.
func (s Scope) Assign(name string, v value.Value, t value.Type) error {
	owner, b, ok := s.find(name)
	if !ok {
		return diag.Errorf(diag.UnboundNameError, "variable %q is not declared", name)
	}
	if b.Type != value.Eq && b.Type != t {
		return diag.Errorf(diag.TypeMismatchError, "cannot assign %s to %q declared %s", t, name, b.Type)
	}
	s.arena.frames[owner].vars[name] = Binding{Value: v, Type: b.Type}
	return nil
}

// Lookup returns the nearest binding of name.
func (s Scope) Lookup(name string) (Binding, error) {
	_, b, ok := s.find(name)
	if !ok {
		return Binding{}, diag.Errorf(diag.UnboundNameError, "variable %q is not declared", name)
	}
	return b, nil
}

// Resolve is Lookup without an error, for callers that treat unbound names
// as free variables.
func (s Scope) Resolve(name string) (Binding, bool) {
	_, b, ok := s.find(name)
	return b, ok
}

// IsLocal reports whether name is declared in this frame itself.
func (s Scope) IsLocal(name string) bool {
	_, ok := s.arena.frames[s.id].vars[name]
	return ok
}

func (s Scope) find(name string) (ID, Binding, bool) {
	for id := s.id; id != NoParent; id = s.arena.frames[id].parent {
		if b, ok := s.arena.frames[id].vars[name]; ok {
			return id, b, true
		}
	}
	return NoParent, Binding{}, false
}
