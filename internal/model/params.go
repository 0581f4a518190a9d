package model

import (
	"strings"
)

// ParamRef identifies a type parameter by the entity declaring it and its name.
// Owner is the qualified name of a type, or "<type>#<method>" for method and
// constructor parameters.
type ParamRef struct {
	Owner string
	Name  string
}

// String returns "Owner#Name".
func (p ParamRef) String() string {
	return p.Owner + "#" + p.Name
}

// TypeParameter is a declared generic parameter with its upper bounds.
type TypeParameter struct {
	Ref    ParamRef
	Bounds []Type
}

// Name returns the declared parameter name.
func (p TypeParameter) Name() string {
	return p.Ref.Name
}

// Variable returns the type variable referring to this parameter.
func (p TypeParameter) Variable() Variable {
	return Variable{Param: p.Ref}
}

// Render renders "T" or "T extends A & B".
func (p TypeParameter) Render(opts RenderOptions) string {
	if len(p.Bounds) == 0 {
		return p.Ref.Name
	}

	bounds := make([]string, len(p.Bounds))
	for i, b := range p.Bounds {
		bounds[i] = b.Render(opts)
	}

	return p.Ref.Name + " extends " + strings.Join(bounds, " & ")
}

// TypeParameters is an ordered list of type parameters.
type TypeParameters []TypeParameter

// Names returns the parameter names in declaration order.
func (ps TypeParameters) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Ref.Name
	}

	return names
}

// Lookup finds a parameter by name.
func (ps TypeParameters) Lookup(name string) (TypeParameter, bool) {
	for _, p := range ps {
		if p.Ref.Name == name {
			return p, true
		}
	}

	return TypeParameter{}, false
}

// Select returns the parameters with the given names, in the order of names.
// Unknown names are skipped.
func (ps TypeParameters) Select(names []string) TypeParameters {
	var out TypeParameters

	for _, n := range names {
		if p, ok := ps.Lookup(n); ok {
			out = append(out, p)
		}
	}

	return out
}

// Variables returns one type variable per parameter.
func (ps TypeParameters) Variables() []Type {
	vars := make([]Type, len(ps))
	for i, p := range ps {
		vars[i] = p.Variable()
	}

	return vars
}

// Render renders "" for an empty list, otherwise "<T, U extends B>".
func (ps TypeParameters) Render(opts RenderOptions) string {
	if len(ps) == 0 {
		return ""
	}

	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Render(opts)
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

// ReferencedNames returns the declared names referenced by the bounds.
func (ps TypeParameters) ReferencedNames() []TypeID {
	var bounds []Type
	for _, p := range ps {
		bounds = append(bounds, p.Bounds...)
	}

	return ReferencedNames(bounds...)
}
