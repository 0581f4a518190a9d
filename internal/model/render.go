package model

import (
	"strings"
)

// RenderOptions controls how types are rendered to source text.
type RenderOptions struct {
	// SimpleNames renders declared types by simple name instead of their
	// fully-qualified name.
	SimpleNames bool
}

var (
	// Qualified renders every declared type fully-qualified.
	Qualified = RenderOptions{}
	// Simple renders every declared type by its simple name.
	Simple = RenderOptions{SimpleNames: true}
)

// Render renders a declared type, e.g. "java.util.Map<K, V>".
func (d Declared) Render(opts RenderOptions) string {
	name := d.ID.String()
	if opts.SimpleNames {
		name = d.ID.Name
	}

	if len(d.Args) == 0 {
		return name
	}

	return name + "<" + renderList(d.Args, opts) + ">"
}

// Render renders the lowercased primitive kind, e.g. "int".
func (p Primitive) Render(RenderOptions) string {
	return strings.ToLower(p.Prim.String())
}

// Render renders the component followed by "[]".
func (a Array) Render(opts RenderOptions) string {
	return renderOrUnknown(a.Component, opts) + "[]"
}

// Render renders the parameter name.
func (v Variable) Render(RenderOptions) string {
	return v.Param.Name
}

// Render renders "?", "? extends B" or "? super B".
func (w Wildcard) Render(opts RenderOptions) string {
	switch {
	case w.Extends != nil:
		return "? extends " + w.Extends.Render(opts)
	case w.Super != nil:
		return "? super " + w.Super.Render(opts)
	default:
		return "?"
	}
}

// Render renders the recovered name and arguments, so substitutions applied
// to the arguments show up. Placeholders without arguments degrade to what
// was written.
func (e ErrorPlaceholder) Render(opts RenderOptions) string {
	if e.Name != "" && len(e.Args) > 0 {
		return e.Name + "<" + renderList(e.Args, opts) + ">"
	}

	if e.Raw != "" {
		return e.Raw
	}

	return e.Name
}

func renderList(types []Type, opts RenderOptions) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = renderOrUnknown(t, opts)
	}

	return strings.Join(parts, ", ")
}

func renderOrUnknown(t Type, opts RenderOptions) string {
	if t == nil {
		return "?"
	}

	return t.Render(opts)
}

// ReferencedNames returns the declared type names transitively reachable from
// t through declared arguments, array components and wildcard bounds, in
// first-encounter order without duplicates.
func ReferencedNames(types ...Type) []TypeID {
	c := nameCollector{seen: make(map[TypeID]struct{})}
	for _, t := range types {
		c.visit(t)
	}

	return c.names
}

type nameCollector struct {
	seen  map[TypeID]struct{}
	names []TypeID
}

func (c *nameCollector) visit(t Type) {
	switch tt := t.(type) {
	case Declared:
		if _, ok := c.seen[tt.ID]; !ok {
			c.seen[tt.ID] = struct{}{}
			c.names = append(c.names, tt.ID)
		}

		for _, arg := range tt.Args {
			c.visit(arg)
		}

	case Array:
		c.visit(tt.Component)

	case Wildcard:
		if tt.Extends != nil {
			c.visit(tt.Extends)
		} else if tt.Super != nil {
			c.visit(tt.Super)
		}

	case ErrorPlaceholder:
		// The placeholder itself has no importable name, its arguments might.
		for _, arg := range tt.Args {
			c.visit(arg)
		}
	}
}

// Variables returns the type variables used anywhere in t, in first-encounter
// order without duplicates.
func Variables(types ...Type) []ParamRef {
	var (
		seen = make(map[ParamRef]struct{})
		out  []ParamRef
		walk func(Type)
	)

	walk = func(t Type) {
		switch tt := t.(type) {
		case Variable:
			if _, ok := seen[tt.Param]; !ok {
				seen[tt.Param] = struct{}{}
				out = append(out, tt.Param)
			}
		case Declared:
			for _, a := range tt.Args {
				walk(a)
			}
		case ErrorPlaceholder:
			for _, a := range tt.Args {
				walk(a)
			}
		case Array:
			walk(tt.Component)
		case Wildcard:
			walk(tt.Extends)
			walk(tt.Super)
		}
	}

	for _, t := range types {
		walk(t)
	}

	return out
}
