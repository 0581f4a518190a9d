package decl

import (
	"mixin-generator/internal/analyze"
	"mixin-generator/internal/model"
)

// Declaration is implemented by every declaration wrapper.
type Declaration interface {
	Ref() Ref
	Name() string
	Modifiers() analyze.Modifiers
	Markers() analyze.Markers
	HasMarker(id model.TypeID) bool
	// Type is the declared type under the active substitution.
	Type() model.Type
	// Enclosing is the type declaring this element; a type encloses itself.
	Enclosing() *TypeDeclaration
}

// Member is a field or method reachable from a type.
type Member interface {
	Declaration
	IsStatic() bool
	IsPrivate() bool
}

// TypeDeclaration is a type symbol viewed through a substitution.
type TypeDeclaration struct {
	refl  *Reflection
	sym   *analyze.TypeSymbol
	subst model.Substitutions
}

func (t *TypeDeclaration) Ref() Ref                           { return Ref{Type: t.sym.ID, Kind: RefType} }
func (t *TypeDeclaration) ID() model.TypeID                   { return t.sym.ID }
func (t *TypeDeclaration) Name() string                       { return t.sym.ID.Name }
func (t *TypeDeclaration) Package() string                    { return t.sym.ID.Package }
func (t *TypeDeclaration) Kind() analyze.DeclKind             { return t.sym.Kind }
func (t *TypeDeclaration) Modifiers() analyze.Modifiers       { return t.sym.Modifiers }
func (t *TypeDeclaration) Markers() analyze.Markers           { return t.sym.Markers }
func (t *TypeDeclaration) Enclosing() *TypeDeclaration        { return t }
func (t *TypeDeclaration) Substitutions() model.Substitutions { return t.subst }

// HasMarker reports whether the type itself carries the marker.
func (t *TypeDeclaration) HasMarker(id model.TypeID) bool { return t.sym.Markers.Has(id) }

// IsInterface reports whether the type is an interface.
func (t *TypeDeclaration) IsInterface() bool { return t.sym.IsInterface() }

// IsAbstract reports whether the type cannot be instantiated directly.
func (t *TypeDeclaration) IsAbstract() bool {
	return t.sym.IsInterface() || t.sym.Modifiers.Has(analyze.ModAbstract)
}

// TypeParameters returns the declared type parameters.
func (t *TypeDeclaration) TypeParameters() model.TypeParameters {
	return t.sym.TypeParams
}

// Type returns the declared type, e.g. Box<T> viewed as itself or
// Box<java.lang.Integer> viewed from IntBox.
func (t *TypeDeclaration) Type() model.Type {
	return model.Declared{ID: t.sym.ID, Args: t.subst.ApplyAll(t.sym.TypeParams.Variables())}
}

// Apply applies the active substitution to a type declared inside this type.
func (t *TypeDeclaration) Apply(typ model.Type) model.Type {
	if typ == nil {
		return nil
	}

	return t.subst.Apply(typ)
}

// SuperclassType returns the declared superclass under the active substitution.
func (t *TypeDeclaration) SuperclassType() model.Type {
	return t.Apply(t.sym.Superclass)
}

// InterfaceTypes returns the directly declared interfaces under the active
// substitution, including placeholders for types not in the symbol table.
func (t *TypeDeclaration) InterfaceTypes() []model.Type {
	return t.subst.ApplyAll(t.sym.Interfaces)
}

// Superclass returns the superclass declaration, if it is known.
func (t *TypeDeclaration) Superclass() (*TypeDeclaration, bool) {
	sc := t.SuperclassType()
	if sc == nil {
		return nil, false
	}

	super, err := t.refl.Instantiate(sc)
	if err != nil {
		return nil, false
	}

	return super, true
}

// Interfaces returns the known interface declarations in declaration order.
func (t *TypeDeclaration) Interfaces() []*TypeDeclaration {
	var out []*TypeDeclaration

	for _, it := range t.InterfaceTypes() {
		if d, err := t.refl.Instantiate(it); err == nil {
			out = append(out, d)
		}
	}

	return out
}

// Supertypes returns the superclass followed by the interfaces.
func (t *TypeDeclaration) Supertypes() []*TypeDeclaration {
	var out []*TypeDeclaration

	if sc, ok := t.Superclass(); ok {
		out = append(out, sc)
	}

	return append(out, t.Interfaces()...)
}

// Fields returns the declared fields, static ones included.
func (t *TypeDeclaration) Fields() []*FieldDeclaration {
	out := make([]*FieldDeclaration, len(t.sym.Fields))
	for i := range t.sym.Fields {
		out[i] = t.field(i)
	}

	return out
}

// Methods returns the declared methods, static ones included.
func (t *TypeDeclaration) Methods() []*MethodDeclaration {
	out := make([]*MethodDeclaration, len(t.sym.Methods))
	for i := range t.sym.Methods {
		out[i] = t.method(i)
	}

	return out
}

// StaticMethods returns the declared static methods.
func (t *TypeDeclaration) StaticMethods() []*MethodDeclaration {
	var out []*MethodDeclaration

	for _, m := range t.Methods() {
		if m.IsStatic() {
			out = append(out, m)
		}
	}

	return out
}

// Constructors returns the declared constructors.
func (t *TypeDeclaration) Constructors() []*ConstructorDeclaration {
	out := make([]*ConstructorDeclaration, len(t.sym.Constructors))
	for i := range t.sym.Constructors {
		out[i] = t.constructor(i)
	}

	return out
}

// DeclaredMembers returns the non-static fields then methods declared by this type.
func (t *TypeDeclaration) DeclaredMembers() []Member {
	var out []Member

	for _, f := range t.Fields() {
		if !f.IsStatic() {
			out = append(out, f)
		}
	}

	for _, m := range t.Methods() {
		if !m.IsStatic() {
			out = append(out, m)
		}
	}

	return out
}

// AllMembers returns the declared members, then the members of the
// superclass subtree, then those of each interface subtree in declaration
// order. Members of a type reached twice are listed once.
func (t *TypeDeclaration) AllMembers() []Member {
	var out []Member

	t.collect(&out, make(map[model.TypeID]struct{}))

	return out
}

func (t *TypeDeclaration) collect(out *[]Member, seen map[model.TypeID]struct{}) {
	if _, ok := seen[t.sym.ID]; ok {
		return
	}

	seen[t.sym.ID] = struct{}{}

	*out = append(*out, t.DeclaredMembers()...)

	for _, s := range t.Supertypes() {
		s.collect(out, seen)
	}
}

func (t *TypeDeclaration) field(i int) *FieldDeclaration {
	return &FieldDeclaration{owner: t, index: i, sym: &t.sym.Fields[i]}
}

func (t *TypeDeclaration) method(i int) *MethodDeclaration {
	return &MethodDeclaration{owner: t, index: i, sym: &t.sym.Methods[i]}
}

func (t *TypeDeclaration) constructor(i int) *ConstructorDeclaration {
	return &ConstructorDeclaration{owner: t, index: i, sym: &t.sym.Constructors[i]}
}
