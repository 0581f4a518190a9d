package decl

import (
	"fmt"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/model"
)

// Reflection gives declaration views over a symbol table.
type Reflection struct {
	table *analyze.SymbolTable
}

// NewReflection creates a Reflection over table.
func NewReflection(table *analyze.SymbolTable) *Reflection {
	return &Reflection{table: table}
}

// Table returns the underlying symbol table.
func (r *Reflection) Table() *analyze.SymbolTable {
	return r.table
}

// Type returns the declaration of id viewed as itself, with its own type
// parameters unbound.
func (r *Reflection) Type(id model.TypeID) (*TypeDeclaration, bool) {
	sym := r.table.GetType(id)
	if sym == nil {
		return nil, false
	}

	return r.newType(sym, model.None()), true
}

// Instantiate returns the declaration named by t with its type parameters
// bound to t's arguments. Raw references (no arguments) leave parameters unbound.
func (r *Reflection) Instantiate(t model.Type) (*TypeDeclaration, error) {
	d, ok := t.(model.Declared)
	if !ok {
		return nil, fmt.Errorf("%s is not a declared type", t.Render(model.Qualified))
	}

	sym := r.table.GetType(d.ID)
	if sym == nil {
		return nil, fmt.Errorf("type %s is not in the symbol table", d.ID)
	}

	if len(d.Args) == 0 {
		return r.newType(sym, model.None()), nil
	}

	subst, err := model.Bind(sym.TypeParams, d.Args)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", d, err)
	}

	return r.newType(sym, subst), nil
}

// Types returns every declaration in symbol-table order.
func (r *Reflection) Types() []*TypeDeclaration {
	ids := r.table.TypeIDs()
	out := make([]*TypeDeclaration, 0, len(ids))

	for _, id := range ids {
		out = append(out, r.newType(r.table.GetType(id), model.None()))
	}

	return out
}

// MarkedWith returns the types and fields carrying marker, in symbol-table
// order with each type before its own fields.
func (r *Reflection) MarkedWith(marker model.TypeID) []Declaration {
	var out []Declaration

	for _, t := range r.Types() {
		if t.HasMarker(marker) {
			out = append(out, t)
		}

		for _, f := range t.Fields() {
			if f.HasMarker(marker) {
				out = append(out, f)
			}
		}
	}

	return out
}

// Resolve returns the declaration a Ref points at, viewed with no substitution.
// Parameter refs are not resolved.
func (r *Reflection) Resolve(ref Ref) (Declaration, bool) {
	t, ok := r.Type(ref.Type)
	if !ok || ref.Member < 0 {
		return nil, false
	}

	switch ref.Kind {
	case RefType:
		return t, true
	case RefField:
		if ref.Member < len(t.sym.Fields) {
			return t.field(ref.Member), true
		}
	case RefMethod:
		if ref.Member < len(t.sym.Methods) {
			return t.method(ref.Member), true
		}
	case RefConstructor:
		if ref.Member < len(t.sym.Constructors) {
			return t.constructor(ref.Member), true
		}
	}

	return nil, false
}

func (r *Reflection) newType(sym *analyze.TypeSymbol, subst model.Substitutions) *TypeDeclaration {
	return &TypeDeclaration{refl: r, sym: sym, subst: subst}
}
