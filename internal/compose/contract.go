package compose

import (
	"slices"

	"mixin-generator/internal/common"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/match"
	"mixin-generator/internal/model"
)

// contracts returns the distinct interfaces declared directly on td that name
// a mixin: placeholders for types generated in this round, or interfaces
// carrying the contract marker.
func (p *Processor) contracts(refl *decl.Reflection, td *decl.TypeDeclaration) []model.Type {
	var out []model.Type

	for _, it := range td.InterfaceTypes() {
		if !p.isContract(refl, it) {
			continue
		}

		out = common.AppendUniqueFunc(out, it, model.Equal)
	}

	return out
}

func (p *Processor) isContract(refl *decl.Reflection, t model.Type) bool {
	switch tt := t.(type) {
	case model.ErrorPlaceholder:
		return true
	case model.Declared:
		sym := refl.Table().GetType(tt.ID)
		return sym != nil && sym.IsInterface() && sym.Markers.Has(p.contract)
	default:
		return false
	}
}

// superMixins walks the supertypes of target depth first, superclass before
// interfaces. A supertype declaring a contract contributes its first contract
// and its branch ends there.
func (p *Processor) superMixins(refl *decl.Reflection, target *decl.TypeDeclaration) []model.Type {
	var out []model.Type

	visited := map[model.TypeID]struct{}{target.ID(): {}}

	var walk func(td *decl.TypeDeclaration)
	walk = func(td *decl.TypeDeclaration) {
		for _, st := range td.Supertypes() {
			if _, ok := visited[st.ID()]; ok {
				continue
			}

			visited[st.ID()] = struct{}{}

			if first, ok := common.First(p.contracts(refl, st)); ok {
				out = common.AppendUniqueFunc(out, artifactType(st.Package(), first), model.Equal)
				continue
			}

			walk(st)
		}
	}

	walk(target)

	return out
}

// artifactName is the simple name of the mixin generated for contract.
func artifactName(contract model.Type) string {
	return match.NewIdentifier(model.SimpleName(contract)).Pascal()
}

// artifactType returns the type a contract refers to once generated. A
// placeholder becomes a reference to the artifact of pkg so it can be
// imported from other packages.
func artifactType(pkg string, contract model.Type) model.Type {
	ph, ok := contract.(model.ErrorPlaceholder)
	if !ok {
		return contract
	}

	return model.Declared{
		ID:   model.TypeID{Package: pkg, Name: artifactName(ph)},
		Args: ph.Args,
	}
}

// contractParamNames returns the names of the type variables passed directly
// as arguments of contract.
func contractParamNames(contract model.Type) []string {
	var names []string

	for _, arg := range model.TypeArgs(contract) {
		if v, ok := arg.(model.Variable); ok && !slices.Contains(names, v.Param.Name) {
			names = append(names, v.Param.Name)
		}
	}

	return names
}
