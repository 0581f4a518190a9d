package model

import (
	"strings"
)

// TypeID uniquely identifies a declared type by its package and simple name.
type TypeID struct {
	Package string // e.g., "com.example"
	Name    string // e.g., "Point"
}

// ParseTypeID splits a dotted qualified name at its last dot.
func ParseTypeID(qualified string) TypeID {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return TypeID{Package: qualified[:i], Name: qualified[i+1:]}
	}

	return TypeID{Name: qualified}
}

// String returns the fully-qualified name.
func (t TypeID) String() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}

// IsZero reports whether the id is unset.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// TypeKind represents the variant of a Type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindDeclared
	TypeKindPrimitive
	TypeKindArray
	TypeKindVariable
	TypeKindWildcard
	TypeKindError
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindDeclared:
		return "declared"
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindArray:
		return "array"
	case TypeKindVariable:
		return "variable"
	case TypeKindWildcard:
		return "wildcard"
	case TypeKindError:
		return "error"
	default:
		return "unknown"
	}
}

// Type is a resolved host type. The set of implementations is closed.
type Type interface {
	Kind() TypeKind
	Render(opts RenderOptions) string
	sealed()
}

// Declared is a reference to a class or interface, possibly parameterized.
type Declared struct {
	ID   TypeID
	Args []Type
}

// Primitive is a built-in scalar type.
type Primitive struct {
	Prim PrimitiveKind
}

// Array is an array of Component.
type Array struct {
	Component Type
}

// Variable is a use of a type parameter.
type Variable struct {
	Param ParamRef
}

// Wildcard is a bounded or unbounded wildcard argument. At most one of
// Extends and Super is set.
type Wildcard struct {
	Extends Type
	Super   Type
}

// ErrorPlaceholder stands for a type the host could not resolve, typically
// one that is being generated in the current round. Raw is the text as
// written; Name and Args are what could be recovered from it. Raw is only
// rendered when nothing else was recovered.
type ErrorPlaceholder struct {
	Raw  string
	Name string
	Args []Type
}

func (Declared) Kind() TypeKind         { return TypeKindDeclared }
func (Primitive) Kind() TypeKind        { return TypeKindPrimitive }
func (Array) Kind() TypeKind            { return TypeKindArray }
func (Variable) Kind() TypeKind         { return TypeKindVariable }
func (Wildcard) Kind() TypeKind         { return TypeKindWildcard }
func (ErrorPlaceholder) Kind() TypeKind { return TypeKindError }

func (Declared) sealed()         {}
func (Primitive) sealed()        {}
func (Array) sealed()            {}
func (Variable) sealed()         {}
func (Wildcard) sealed()         {}
func (ErrorPlaceholder) sealed() {}

// String renders the type fully qualified.
func (d Declared) String() string         { return d.Render(Qualified) }
func (p Primitive) String() string        { return p.Render(Qualified) }
func (a Array) String() string            { return a.Render(Qualified) }
func (v Variable) String() string         { return v.Render(Qualified) }
func (w Wildcard) String() string         { return w.Render(Qualified) }
func (e ErrorPlaceholder) String() string { return e.Render(Qualified) }

// NewDeclared builds a declared type reference.
func NewDeclared(id TypeID, args ...Type) Declared {
	return Declared{ID: id, Args: args}
}

// Equal reports structural equality of two types.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch at := a.(type) {
	case Declared:
		bt, ok := b.(Declared)
		return ok && at.ID == bt.ID && equalAll(at.Args, bt.Args)

	case Primitive:
		bt, ok := b.(Primitive)
		return ok && at.Prim == bt.Prim

	case Array:
		bt, ok := b.(Array)
		return ok && Equal(at.Component, bt.Component)

	case Variable:
		bt, ok := b.(Variable)
		return ok && at.Param == bt.Param

	case Wildcard:
		bt, ok := b.(Wildcard)
		return ok && Equal(at.Extends, bt.Extends) && Equal(at.Super, bt.Super)

	case ErrorPlaceholder:
		bt, ok := b.(ErrorPlaceholder)
		return ok && at.Raw == bt.Raw && at.Name == bt.Name && equalAll(at.Args, bt.Args)

	default:
		return false
	}
}

func equalAll(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// TypeArgs returns the type arguments of declared and placeholder types.
func TypeArgs(t Type) []Type {
	switch tt := t.(type) {
	case Declared:
		return tt.Args
	case ErrorPlaceholder:
		return tt.Args
	default:
		return nil
	}
}

// SimpleName returns the unqualified name of declared and placeholder types,
// or the rendered simple form for everything else.
func SimpleName(t Type) string {
	switch tt := t.(type) {
	case Declared:
		return tt.ID.Name
	case ErrorPlaceholder:
		if tt.Name != "" {
			return tt.Name
		}

		return tt.Raw
	default:
		return t.Render(Simple)
	}
}
