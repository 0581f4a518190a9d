package gen

import (
	"mixin-generator/internal/model"
)

// Component is one generator's contribution to the artifact of a target.
type Component struct {
	// Generator is the name of the generator that produced the component.
	Generator string
	// Target is the declaration the artifact is generated for.
	Target model.TypeID
	// References are the declared names the body refers to.
	References []model.TypeID
	// Body is the rendered member text.
	Body string
}

// Mixin is a fully resolved artifact ready for rendering.
type Mixin struct {
	// Package is the package of the target and of the artifact.
	Package string
	// Name is the simple artifact name.
	Name string
	// Target is the declaration the artifact is generated for.
	Target model.TypeID
	// Contract is the interface reference on the target naming the artifact.
	Contract model.Type
	// TypeParameters are the target parameters used by the contract reference.
	TypeParameters model.TypeParameters
	// SuperMixins are contract interfaces inherited from supertypes.
	SuperMixins []model.Type
	// Components are the merged contributions in discovery order.
	Components []Component
	// Imports are the fully qualified names to import.
	Imports []string
}

// QualifiedName returns "<package>.<name>".
func (m *Mixin) QualifiedName() string {
	return model.TypeID{Package: m.Package, Name: m.Name}.String()
}

// Bodies returns the distinct component bodies in discovery order.
func (m *Mixin) Bodies() []string {
	seen := make(map[string]struct{}, len(m.Components))
	out := make([]string, 0, len(m.Components))

	for _, c := range m.Components {
		if _, ok := seen[c.Body]; ok {
			continue
		}

		seen[c.Body] = struct{}{}
		out = append(out, c.Body)
	}

	return out
}

// References returns the names referenced by the components, the contract
// parameter bounds and the super-mixins.
func (m *Mixin) References() []model.TypeID {
	var refs []model.TypeID

	for _, c := range m.Components {
		refs = append(refs, c.References...)
	}

	refs = append(refs, m.TypeParameters.ReferencedNames()...)
	refs = append(refs, model.ReferencedNames(m.SuperMixins...)...)

	return refs
}
