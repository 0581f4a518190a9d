package decl

import (
	"mixin-generator/internal/analyze"
	"mixin-generator/internal/model"
)

// FieldDeclaration is a field viewed through its owner's substitution.
type FieldDeclaration struct {
	owner *TypeDeclaration
	index int
	sym   *analyze.FieldSymbol
}

func (f *FieldDeclaration) Ref() Ref {
	return Ref{Type: f.owner.ID(), Kind: RefField, Member: f.index}
}

func (f *FieldDeclaration) Name() string                   { return f.sym.Name }
func (f *FieldDeclaration) Modifiers() analyze.Modifiers   { return f.sym.Modifiers }
func (f *FieldDeclaration) Markers() analyze.Markers       { return f.sym.Markers }
func (f *FieldDeclaration) HasMarker(id model.TypeID) bool { return f.sym.Markers.Has(id) }
func (f *FieldDeclaration) Type() model.Type               { return f.owner.Apply(f.sym.Type) }
func (f *FieldDeclaration) Enclosing() *TypeDeclaration    { return f.owner }
func (f *FieldDeclaration) IsStatic() bool                 { return f.sym.Modifiers.Has(analyze.ModStatic) }
func (f *FieldDeclaration) IsPrivate() bool                { return f.sym.Modifiers.Has(analyze.ModPrivate) }

// IsFinal reports whether the field cannot be reassigned.
func (f *FieldDeclaration) IsFinal() bool { return f.sym.Modifiers.Has(analyze.ModFinal) }

// MethodDeclaration is a method viewed through its owner's substitution.
// Method type parameters stay unbound.
type MethodDeclaration struct {
	owner *TypeDeclaration
	index int
	sym   *analyze.MethodSymbol
}

func (m *MethodDeclaration) Ref() Ref {
	return Ref{Type: m.owner.ID(), Kind: RefMethod, Member: m.index}
}

func (m *MethodDeclaration) Name() string                   { return m.sym.Name }
func (m *MethodDeclaration) Modifiers() analyze.Modifiers   { return m.sym.Modifiers }
func (m *MethodDeclaration) Markers() analyze.Markers       { return m.sym.Markers }
func (m *MethodDeclaration) HasMarker(id model.TypeID) bool { return m.sym.Markers.Has(id) }
func (m *MethodDeclaration) Enclosing() *TypeDeclaration    { return m.owner }
func (m *MethodDeclaration) IsStatic() bool                 { return m.sym.Modifiers.Has(analyze.ModStatic) }
func (m *MethodDeclaration) IsPrivate() bool                { return m.sym.Modifiers.Has(analyze.ModPrivate) }

// Type returns the return type.
func (m *MethodDeclaration) Type() model.Type { return m.ReturnType() }

// ReturnType returns the return type under the owner's substitution.
func (m *MethodDeclaration) ReturnType() model.Type { return m.owner.Apply(m.sym.Returns) }

// TypeParameters returns the method's own type parameters.
func (m *MethodDeclaration) TypeParameters() model.TypeParameters { return m.sym.TypeParams }

// Parameters returns the value parameters.
func (m *MethodDeclaration) Parameters() []*ParameterDeclaration {
	return parameters(m.owner, m.Ref(), m.sym.Params)
}

// ConstructorDeclaration is a constructor viewed through its owner's substitution.
type ConstructorDeclaration struct {
	owner *TypeDeclaration
	index int
	sym   *analyze.ConstructorSymbol
}

func (c *ConstructorDeclaration) Ref() Ref {
	return Ref{Type: c.owner.ID(), Kind: RefConstructor, Member: c.index}
}

// Name returns the simple name of the constructed type.
func (c *ConstructorDeclaration) Name() string                   { return c.owner.Name() }
func (c *ConstructorDeclaration) Modifiers() analyze.Modifiers   { return c.sym.Modifiers }
func (c *ConstructorDeclaration) Markers() analyze.Markers       { return c.sym.Markers }
func (c *ConstructorDeclaration) HasMarker(id model.TypeID) bool { return c.sym.Markers.Has(id) }
func (c *ConstructorDeclaration) Enclosing() *TypeDeclaration    { return c.owner }
func (c *ConstructorDeclaration) IsPrivate() bool                { return c.sym.Modifiers.Has(analyze.ModPrivate) }

// Type returns the constructed type.
func (c *ConstructorDeclaration) Type() model.Type { return c.owner.Type() }

// TypeParameters returns the constructor's own type parameters.
func (c *ConstructorDeclaration) TypeParameters() model.TypeParameters { return c.sym.TypeParams }

// Parameters returns the value parameters.
func (c *ConstructorDeclaration) Parameters() []*ParameterDeclaration {
	return parameters(c.owner, c.Ref(), c.sym.Params)
}

// ParameterDeclaration is a method or constructor parameter.
type ParameterDeclaration struct {
	owner *TypeDeclaration
	ref   Ref
	sym   *analyze.ParamSymbol
}

func (p *ParameterDeclaration) Ref() Ref                       { return p.ref }
func (p *ParameterDeclaration) Name() string                   { return p.sym.Name }
func (p *ParameterDeclaration) Modifiers() analyze.Modifiers   { return nil }
func (p *ParameterDeclaration) Markers() analyze.Markers       { return p.sym.Markers }
func (p *ParameterDeclaration) HasMarker(id model.TypeID) bool { return p.sym.Markers.Has(id) }
func (p *ParameterDeclaration) Type() model.Type               { return p.owner.Apply(p.sym.Type) }
func (p *ParameterDeclaration) Enclosing() *TypeDeclaration    { return p.owner }

// Index returns the position in the parameter list.
func (p *ParameterDeclaration) Index() int { return p.ref.Param }

func parameters(owner *TypeDeclaration, of Ref, syms []analyze.ParamSymbol) []*ParameterDeclaration {
	out := make([]*ParameterDeclaration, len(syms))

	for i := range syms {
		out[i] = &ParameterDeclaration{
			owner: owner,
			ref:   Ref{Type: of.Type, Kind: RefParameter, Member: of.Member, Of: of.Kind, Param: i},
			sym:   &syms[i],
		}
	}

	return out
}

var (
	_ Member      = (*FieldDeclaration)(nil)
	_ Member      = (*MethodDeclaration)(nil)
	_ Declaration = (*TypeDeclaration)(nil)
	_ Declaration = (*ConstructorDeclaration)(nil)
	_ Declaration = (*ParameterDeclaration)(nil)
)
