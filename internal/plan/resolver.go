package plan

import (
	"fmt"

	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/match"
)

// maxSuggestions is the maximum number of names suggested for an unmatched parameter.
const maxSuggestions = 3

// Resolver resolves properties with fixed options.
type Resolver struct {
	opts Options
}

// NewResolver creates a new Resolver.
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// Options returns the resolver options.
func (r *Resolver) Options() Options {
	return r.opts
}

// group holds the candidates sharing one normalized name, in traversal order.
type group struct {
	key        string
	candidates []Property
}

// Resolve returns the properties of target. With a creator, properties follow
// its parameter order and every parameter yields exactly one property.
func (r *Resolver) Resolve(target *decl.TypeDeclaration, creator Creator) Resolution {
	var res Resolution

	groups := r.group(r.candidates(target))
	groups = r.dropExcluded(groups)
	groups = r.keepIncluded(groups)

	resolved := make(Properties, 0, len(groups))
	for _, g := range groups {
		resolved = append(resolved, g.candidates[0])
	}

	if creator == nil {
		res.Properties = resolved
		return res
	}

	params := creator.Parameters()
	res.Properties = make(Properties, 0, len(params))

	for _, p := range params {
		if prop, ok := resolved.Lookup(p.Name()); ok {
			res.Properties = append(res.Properties, prop)
			continue
		}

		name := match.NewIdentifier(p.Name())
		res.Properties = append(res.Properties, Property{
			Name:     name,
			Type:     p.Type(),
			Accessor: Sentinel(name),
			Source:   SourceSynthetic,
		})

		res.Diagnostics.AddInfo(diagnostic.CodeNoSuchProperty,
			fmt.Sprintf("no property matches parameter %q of %s", p.Name(), creator.Ref()),
			target.ID().String(), p.Name(),
			match.Suggest(p.Name(), resolved.Names(), maxSuggestions)...)
	}

	return res
}

// candidates enumerates the members that may back a property, in traversal order.
func (r *Resolver) candidates(target *decl.TypeDeclaration) []Property {
	var members []decl.Member
	if r.opts.DeclaredOnly {
		members = target.DeclaredMembers()
	} else {
		members = target.AllMembers()
	}

	out := make([]Property, 0, len(members))

	for _, m := range members {
		if m.IsPrivate() && !r.opts.IncludePrivate {
			continue
		}

		prop, ok := r.candidate(m)
		if !ok {
			continue
		}

		if !r.opts.Include.IsZero() {
			prop.Included = m.HasMarker(r.opts.Include)
		}

		if !r.opts.Exclude.IsZero() {
			prop.Excluded = m.HasMarker(r.opts.Exclude)
		}

		out = append(out, prop)
	}

	return out
}

func (r *Resolver) candidate(m decl.Member) (Property, bool) {
	switch m := m.(type) {
	case *decl.FieldDeclaration:
		return FieldProperty(m), true

	case *decl.MethodDeclaration:
		if r.opts.FieldsOnly || len(m.TypeParameters()) > 0 || len(m.Parameters()) > 0 {
			return Property{}, false
		}

		name, ok := match.AccessorProperty(m.Name())
		if !ok {
			return Property{}, false
		}

		return Property{
			Name:     match.NewIdentifier(name),
			Type:     m.ReturnType(),
			Accessor: m.Name() + "()",
			Member:   m,
			Source:   SourceGetter,
		}, true
	}

	return Property{}, false
}

// FieldProperty returns the property backed by a single field.
func FieldProperty(f *decl.FieldDeclaration) Property {
	return Property{
		Name:     match.NewIdentifier(f.Name()),
		Type:     f.Type(),
		Accessor: f.Name(),
		Member:   f,
		Source:   SourceField,
	}
}

// group folds candidates into groups ordered by first appearance.
func (r *Resolver) group(candidates []Property) []group {
	index := make(map[string]int)

	var groups []group

	for _, c := range candidates {
		key := c.Name.Key()

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group{key: key})
		}

		groups[i].candidates = append(groups[i].candidates, c)
	}

	return groups
}

func (r *Resolver) dropExcluded(groups []group) []group {
	out := groups[:0:0]

	for _, g := range groups {
		excluded := false

		for _, c := range g.candidates {
			if c.Excluded {
				excluded = true
				break
			}
		}

		if !excluded {
			out = append(out, g)
		}
	}

	return out
}

func (r *Resolver) keepIncluded(groups []group) []group {
	included := false

	for _, g := range groups {
		for _, c := range g.candidates {
			included = included || c.Included
		}
	}

	if !included {
		return groups
	}

	out := groups[:0:0]

	for _, g := range groups {
		var kept []Property

		for _, c := range g.candidates {
			if c.Included {
				kept = append(kept, c)
			}
		}

		if len(kept) > 0 {
			out = append(out, group{key: g.key, candidates: kept})
		}
	}

	return out
}
