package analyze

import (
	"fmt"
	"slices"

	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/model"
)

// Validate checks a symbol table before a round. It reports marker bindings
// to generators missing from generators, bound markers nothing carries, and
// duplicate member or parameter names. This is a structural check only.
func Validate(table *SymbolTable, generators []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if table == nil {
		res.AddError("table_is_nil", "symbol table is nil", "", "")
		return res
	}

	used := make(map[model.TypeID]struct{})

	for _, id := range table.TypeIDs() {
		sym := table.GetType(id)
		target := id.String()

		markUsed(used, sym.Markers)

		if _, ok := sym.Superclass.(model.ErrorPlaceholder); ok {
			res.AddWarning("unresolved_superclass",
				fmt.Sprintf("superclass %s is not declared", sym.Superclass.Render(model.Qualified)), target, "")
		}

		seenFields := make(map[string]struct{}, len(sym.Fields))

		for _, f := range sym.Fields {
			markUsed(used, f.Markers)

			if _, ok := seenFields[f.Name]; ok {
				res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), target, f.Name)
				continue
			}

			seenFields[f.Name] = struct{}{}
		}

		for _, m := range sym.Methods {
			markUsed(used, m.Markers)
			validateParams(res, target, m.Name, m.Params)
		}

		for i, c := range sym.Constructors {
			markUsed(used, c.Markers)
			validateParams(res, target, fmt.Sprintf("constructor[%d]", i), c.Params)
		}
	}

	for _, id := range table.MarkerIDs() {
		b := table.Markers[id]

		if !slices.Contains(generators, b.Generator) {
			res.AddError("unknown_generator",
				fmt.Sprintf("marker is bound to unknown generator %q", b.Generator), "", id.String())
		}

		if _, ok := used[id]; !ok {
			res.AddWarning("unused_marker", "bound marker is not used by any declaration", "", id.String())
		}
	}

	return res
}

func validateParams(res *diagnostic.Diagnostics, target, owner string, params []ParamSymbol) {
	seen := make(map[string]struct{}, len(params))

	for _, p := range params {
		if _, ok := seen[p.Name]; ok {
			res.AddError("duplicate_parameter", fmt.Sprintf("duplicate parameter %q", p.Name), target, owner)
			continue
		}

		seen[p.Name] = struct{}{}
	}
}

func markUsed(used map[model.TypeID]struct{}, markers Markers) {
	for _, m := range markers {
		used[m] = struct{}{}
	}
}
