package analyze

import (
	"fmt"

	"mixin-generator/internal/model"
)

// implicitPackage holds the names visible without an import.
const implicitPackage = "java.lang"

var implicitNames = map[string]struct{}{
	"Object": {}, "String": {}, "CharSequence": {}, "Number": {},
	"Boolean": {}, "Byte": {}, "Short": {}, "Integer": {}, "Long": {},
	"Character": {}, "Float": {}, "Double": {}, "Void": {},
	"Comparable": {}, "Iterable": {}, "Enum": {}, "Class": {},
}

// scope resolves names used inside one type declaration.
type scope struct {
	table   *SymbolTable
	pkg     string
	imports map[string]model.TypeID
	params  []model.TypeParameters // innermost first
}

func newScope(table *SymbolTable, pkg string, imports []string) *scope {
	s := &scope{table: table, pkg: pkg, imports: make(map[string]model.TypeID, len(imports))}

	for _, imp := range imports {
		id := model.ParseTypeID(imp)
		s.imports[id.Name] = id
	}

	return s
}

// with returns a scope with an additional innermost parameter list.
func (s *scope) with(params model.TypeParameters) *scope {
	inner := *s
	inner.params = append([]model.TypeParameters{params}, s.params...)

	return &inner
}

func (s *scope) lookupParam(name string) (model.TypeParameter, bool) {
	for _, ps := range s.params {
		if p, ok := ps.Lookup(name); ok {
			return p, true
		}
	}

	return model.TypeParameter{}, false
}

// resolveName resolves an unqualified or qualified declared name.
func (s *scope) resolveName(name string) (model.TypeID, bool) {
	id := model.ParseTypeID(name)
	if id.Package != "" {
		return id, true
	}

	if local := (model.TypeID{Package: s.pkg, Name: name}); s.table.GetType(local) != nil {
		return local, true
	}

	if imported, ok := s.imports[name]; ok {
		return imported, true
	}

	if _, ok := implicitNames[name]; ok {
		return model.TypeID{Package: implicitPackage, Name: name}, true
	}

	return model.TypeID{}, false
}

// parse parses and resolves type expression text.
func (s *scope) parse(text string) (model.Type, error) {
	if text == "" {
		return nil, nil
	}

	expr, err := ParseTypeExpr(text)
	if err != nil {
		return nil, err
	}

	return s.resolve(expr), nil
}

func (s *scope) resolve(e *TypeExpr) model.Type {
	if e.Wildcard {
		w := model.Wildcard{}

		if e.Bound != nil {
			if e.Super {
				w.Super = s.resolve(e.Bound)
			} else {
				w.Extends = s.resolve(e.Bound)
			}
		}

		return w
	}

	var t model.Type

	args := make([]model.Type, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, s.resolve(a))
	}

	if len(args) == 0 {
		args = nil
	}

	switch {
	case !e.IsQualified() && len(args) == 0 && s.isParam(e.Name):
		p, _ := s.lookupParam(e.Name)
		t = p.Variable()

	case !e.IsQualified() && len(args) == 0 && isPrimitive(e.Name):
		prim, _ := model.ParsePrimitive(e.Name)
		t = model.Primitive{Prim: prim}

	default:
		if id, ok := s.resolveName(e.Name); ok {
			t = model.Declared{ID: id, Args: args}
		} else {
			base := *e
			base.Dims = 0
			t = model.ErrorPlaceholder{Raw: base.String(), Name: e.Name, Args: args}
		}
	}

	for range e.Dims {
		t = model.Array{Component: t}
	}

	return t
}

func (s *scope) isParam(name string) bool {
	_, ok := s.lookupParam(name)
	return ok
}

func isPrimitive(name string) bool {
	_, ok := model.ParsePrimitive(name)
	return ok
}

// resolveParams declares parameters first and resolves bounds afterwards so
// bounds may refer to the parameters themselves (e.g. T extends Comparable<T>).
func (s *scope) resolveParams(owner string, decls []TypeParamDecl) (model.TypeParameters, *scope, error) {
	if len(decls) == 0 {
		return nil, s, nil
	}

	params := make(model.TypeParameters, len(decls))
	for i, d := range decls {
		params[i] = model.TypeParameter{Ref: model.ParamRef{Owner: owner, Name: d.Name}}
	}

	inner := s.with(params)

	for i, d := range decls {
		for _, b := range d.Bounds {
			bound, err := inner.parse(b)
			if err != nil {
				return nil, nil, fmt.Errorf("bound of %s: %w", d.Name, err)
			}

			params[i].Bounds = append(params[i].Bounds, bound)
		}
	}

	return params, inner, nil
}

func (s *scope) resolveMarkers(names []string) Markers {
	if len(names) == 0 {
		return nil
	}

	out := make(Markers, 0, len(names))

	for _, n := range names {
		id := model.ParseTypeID(n)
		if id.Package == "" {
			if resolved, ok := s.resolveName(n); ok {
				id = resolved
			}
		}

		out = append(out, id)
	}

	return out
}

func (s *scope) resolveParamList(decls []ParamDecl) ([]ParamSymbol, error) {
	out := make([]ParamSymbol, 0, len(decls))

	for _, d := range decls {
		t, err := s.parse(d.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", d.Name, err)
		}

		out = append(out, ParamSymbol{Name: d.Name, Type: t, Markers: s.resolveMarkers(d.Markers)})
	}

	return out, nil
}

func resolveType(table *SymbolTable, sym *TypeSymbol, decl *TypeDecl) error {
	base := newScope(table, sym.ID.Package, decl.Imports)

	params, sc, err := base.resolveParams(sym.ID.String(), decl.TypeParameters)
	if err != nil {
		return err
	}

	sym.TypeParams = params
	sym.Markers = sc.resolveMarkers(decl.Markers)

	if sym.Superclass, err = sc.parse(decl.Superclass); err != nil {
		return fmt.Errorf("superclass: %w", err)
	}

	for _, i := range decl.Interfaces {
		t, err := sc.parse(i)
		if err != nil {
			return fmt.Errorf("interface %s: %w", i, err)
		}

		sym.Interfaces = append(sym.Interfaces, t)
	}

	for _, f := range decl.Fields {
		t, err := sc.parse(f.Type)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		sym.Fields = append(sym.Fields, FieldSymbol{
			Name:      f.Name,
			Type:      t,
			Modifiers: Modifiers(f.Modifiers),
			Markers:   sc.resolveMarkers(f.Markers),
		})
	}

	for _, m := range decl.Methods {
		method, err := resolveMethod(sc, sym.ID, m)
		if err != nil {
			return fmt.Errorf("method %s: %w", m.Name, err)
		}

		sym.Methods = append(sym.Methods, method)
	}

	for i, c := range decl.Constructors {
		ctor, err := resolveConstructor(sc, sym.ID, c)
		if err != nil {
			return fmt.Errorf("constructor #%d: %w", i, err)
		}

		sym.Constructors = append(sym.Constructors, ctor)
	}

	return nil
}

func resolveMethod(sc *scope, owner model.TypeID, m MethodDecl) (MethodSymbol, error) {
	params, inner, err := sc.resolveParams(owner.String()+"#"+m.Name, m.TypeParameters)
	if err != nil {
		return MethodSymbol{}, err
	}

	returns, err := inner.parse(m.Returns)
	if err != nil {
		return MethodSymbol{}, fmt.Errorf("return type: %w", err)
	}

	if returns == nil {
		returns = model.Primitive{Prim: model.PrimitiveVoid}
	}

	values, err := inner.resolveParamList(m.Parameters)
	if err != nil {
		return MethodSymbol{}, err
	}

	return MethodSymbol{
		Name:       m.Name,
		TypeParams: params,
		Params:     values,
		Returns:    returns,
		Modifiers:  Modifiers(m.Modifiers),
		Markers:    inner.resolveMarkers(m.Markers),
	}, nil
}

func resolveConstructor(sc *scope, owner model.TypeID, c ConstructorDecl) (ConstructorSymbol, error) {
	params, inner, err := sc.resolveParams(owner.String()+"#<init>", c.TypeParameters)
	if err != nil {
		return ConstructorSymbol{}, err
	}

	values, err := inner.resolveParamList(c.Parameters)
	if err != nil {
		return ConstructorSymbol{}, err
	}

	return ConstructorSymbol{
		TypeParams: params,
		Params:     values,
		Modifiers:  Modifiers(c.Modifiers),
		Markers:    inner.resolveMarkers(c.Markers),
	}, nil
}
