package model

import (
	"errors"
	"fmt"
)

// ErrArityMismatch is returned when binding a different number of arguments
// than there are parameters.
var ErrArityMismatch = errors.New("type argument count does not match parameter count")

// Substitutions is an immutable mapping from type parameters to types.
// The zero value is the empty substitution.
type Substitutions struct {
	entries map[ParamRef]Type
	order   []ParamRef
}

// None returns the empty substitution.
func None() Substitutions {
	return Substitutions{}
}

// NewSubstitutions builds a substitution from explicit pairs. A parameter may
// appear only once.
func NewSubstitutions(params []ParamRef, args []Type) (Substitutions, error) {
	if len(params) != len(args) {
		return Substitutions{}, fmt.Errorf("%w: %d parameters, %d arguments", ErrArityMismatch, len(params), len(args))
	}

	s := Substitutions{
		entries: make(map[ParamRef]Type, len(params)),
		order:   make([]ParamRef, 0, len(params)),
	}

	for i, p := range params {
		if _, dup := s.entries[p]; dup {
			return Substitutions{}, fmt.Errorf("duplicate substitution for %s", p)
		}

		s.entries[p] = args[i]
		s.order = append(s.order, p)
	}

	return s, nil
}

// Bind binds the parameters of a generic declaration to the given arguments.
func Bind(params TypeParameters, args []Type) (Substitutions, error) {
	refs := make([]ParamRef, len(params))
	for i, p := range params {
		refs[i] = p.Ref
	}

	return NewSubstitutions(refs, args)
}

// Len returns the number of bound parameters.
func (s Substitutions) Len() int {
	return len(s.order)
}

// IsEmpty reports whether no parameter is bound.
func (s Substitutions) IsEmpty() bool {
	return len(s.order) == 0
}

// Lookup returns the type bound to p.
func (s Substitutions) Lookup(p ParamRef) (Type, bool) {
	t, ok := s.entries[p]
	return t, ok
}

// Params returns the bound parameters in binding order.
func (s Substitutions) Params() []ParamRef {
	return append([]ParamRef(nil), s.order...)
}

// Equal reports whether both substitutions bind the same parameters to
// structurally equal types.
func (s Substitutions) Equal(o Substitutions) bool {
	if s.Len() != o.Len() {
		return false
	}

	for p, t := range s.entries {
		ot, ok := o.entries[p]
		if !ok || !Equal(t, ot) {
			return false
		}
	}

	return true
}

// Apply replaces every bound type variable in t.
func (s Substitutions) Apply(t Type) Type {
	if s.IsEmpty() || t == nil {
		return t
	}

	switch tt := t.(type) {
	case Variable:
		if bound, ok := s.entries[tt.Param]; ok {
			return bound
		}

		return tt

	case Declared:
		return Declared{ID: tt.ID, Args: s.ApplyAll(tt.Args)}

	case ErrorPlaceholder:
		if len(tt.Args) == 0 {
			return tt
		}

		return ErrorPlaceholder{Raw: tt.Raw, Name: tt.Name, Args: s.ApplyAll(tt.Args)}

	case Array:
		return Array{Component: s.Apply(tt.Component)}

	case Wildcard:
		return Wildcard{Extends: s.Apply(tt.Extends), Super: s.Apply(tt.Super)}

	default:
		return t
	}
}

// ApplyAll applies the substitution element-wise.
func (s Substitutions) ApplyAll(types []Type) []Type {
	if types == nil {
		return nil
	}

	out := make([]Type, len(types))
	for i, t := range types {
		out[i] = s.Apply(t)
	}

	return out
}

// Compose returns the substitution equivalent to applying inner and then
// outer.
func Compose(inner, outer Substitutions) Substitutions {
	if inner.IsEmpty() {
		return outer
	}

	if outer.IsEmpty() {
		return inner
	}

	out := Substitutions{
		entries: make(map[ParamRef]Type, inner.Len()+outer.Len()),
		order:   make([]ParamRef, 0, inner.Len()+outer.Len()),
	}

	for _, p := range inner.order {
		out.entries[p] = outer.Apply(inner.entries[p])
		out.order = append(out.order, p)
	}

	for _, p := range outer.order {
		if _, ok := out.entries[p]; ok {
			continue
		}

		out.entries[p] = outer.entries[p]
		out.order = append(out.order, p)
	}

	return out
}

// String renders the bindings, e.g. "{T=int, U=java.lang.String}".
func (s Substitutions) String() string {
	out := "{"

	for i, p := range s.order {
		if i > 0 {
			out += ", "
		}

		out += p.Name + "=" + renderOrUnknown(s.entries[p], Qualified)
	}

	return out + "}"
}
