package analyze

import (
	"slices"

	"mixin-generator/internal/common"
	"mixin-generator/internal/model"
)

// DeclKind represents the kind of a type declaration.
type DeclKind int

const (
	DeclKindUnknown    DeclKind = iota
	DeclKindClass               // concrete or abstract class
	DeclKindInterface           // interface
	DeclKindEnum                // enum
	DeclKindAnnotation          // marker declaration
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclKindClass:
		return "class"
	case DeclKindInterface:
		return "interface"
	case DeclKindEnum:
		return "enum"
	case DeclKindAnnotation:
		return "annotation"
	default:
		return common.UnknownStr
	}
}

// ParseDeclKind parses the kind names used in declaration files.
func ParseDeclKind(s string) DeclKind {
	switch s {
	case "", "class":
		return DeclKindClass
	case "interface":
		return DeclKindInterface
	case "enum":
		return DeclKindEnum
	case "annotation":
		return DeclKindAnnotation
	default:
		return DeclKindUnknown
	}
}

// Modifier names recognized by the generator.
const (
	ModPublic    = "public"
	ModProtected = "protected"
	ModPrivate   = "private"
	ModStatic    = "static"
	ModFinal     = "final"
	ModAbstract  = "abstract"
	ModDefault   = "default"
)

// Modifiers is the set of modifiers of a declaration.
type Modifiers []string

// Has returns true if the modifier is present.
func (m Modifiers) Has(mod string) bool {
	return slices.Contains(m, mod)
}

// Markers is the set of markers carried by a declaration.
type Markers []model.TypeID

// Has returns true if the marker is present.
func (m Markers) Has(id model.TypeID) bool {
	return slices.Contains(m, id)
}

// TypeSymbol describes a class, interface, enum or marker declaration.
type TypeSymbol struct {
	ID           model.TypeID         // Unique identifier
	Kind         DeclKind             // Kind of declaration
	Modifiers    Modifiers            // Declared modifiers
	Markers      Markers              // Markers on the declaration itself
	TypeParams   model.TypeParameters // Generic parameters, in declaration order
	Superclass   model.Type           // Declared superclass, nil if none
	Interfaces   []model.Type         // Directly implemented or extended interfaces
	Fields       []FieldSymbol        // Declared fields
	Methods      []MethodSymbol       // Declared methods
	Constructors []ConstructorSymbol  // Declared constructors
}

// IsInterface returns true for interfaces and marker declarations.
func (t *TypeSymbol) IsInterface() bool {
	return t.Kind == DeclKindInterface || t.Kind == DeclKindAnnotation
}

// FieldSymbol describes a field.
type FieldSymbol struct {
	Name      string
	Type      model.Type
	Modifiers Modifiers
	Markers   Markers
}

// ParamSymbol describes a method or constructor parameter.
type ParamSymbol struct {
	Name    string
	Type    model.Type
	Markers Markers
}

// MethodSymbol describes a method.
type MethodSymbol struct {
	Name       string
	TypeParams model.TypeParameters
	Params     []ParamSymbol
	Returns    model.Type
	Modifiers  Modifiers
	Markers    Markers
}

// ConstructorSymbol describes a constructor.
type ConstructorSymbol struct {
	TypeParams model.TypeParameters
	Params     []ParamSymbol
	Modifiers  Modifiers
	Markers    Markers
}

// MarkerBinding binds a marker to the generator computing its contribution.
type MarkerBinding struct {
	ID        model.TypeID
	Generator string
}

// PackageInfo holds information about a declared package.
type PackageInfo struct {
	Name  string         // Qualified package name
	Types []model.TypeID // Types declared in this package, in file order
}

// SymbolTable holds every declaration known to the host for one round.
type SymbolTable struct {
	// Version is the declaration file schema version.
	Version string
	// Types maps TypeID to its symbol.
	Types map[model.TypeID]*TypeSymbol
	// Packages maps package names to their info.
	Packages map[string]*PackageInfo
	// Markers maps marker ids to their generator binding.
	Markers map[model.TypeID]*MarkerBinding

	order       []model.TypeID
	markerOrder []model.TypeID
}

// NewSymbolTable creates a new empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Types:    make(map[model.TypeID]*TypeSymbol),
		Packages: make(map[string]*PackageInfo),
		Markers:  make(map[model.TypeID]*MarkerBinding),
	}
}

// Add registers a type symbol, keeping declaration order.
func (s *SymbolTable) Add(sym *TypeSymbol) {
	if _, ok := s.Types[sym.ID]; !ok {
		s.order = append(s.order, sym.ID)
	}

	s.Types[sym.ID] = sym

	pkg, ok := s.Packages[sym.ID.Package]
	if !ok {
		pkg = &PackageInfo{Name: sym.ID.Package}
		s.Packages[sym.ID.Package] = pkg
	}

	if !slices.Contains(pkg.Types, sym.ID) {
		pkg.Types = append(pkg.Types, sym.ID)
	}
}

// Bind registers a marker binding.
func (s *SymbolTable) Bind(b *MarkerBinding) {
	if _, ok := s.Markers[b.ID]; !ok {
		s.markerOrder = append(s.markerOrder, b.ID)
	}

	s.Markers[b.ID] = b
}

// GetType returns the TypeSymbol for a given TypeID, or nil if not found.
func (s *SymbolTable) GetType(id model.TypeID) *TypeSymbol {
	return s.Types[id]
}

// TypeIDs returns all type ids in declaration order.
func (s *SymbolTable) TypeIDs() []model.TypeID {
	return slices.Clone(s.order)
}

// MarkerIDs returns all bound marker ids in declaration order.
func (s *SymbolTable) MarkerIDs() []model.TypeID {
	return slices.Clone(s.markerOrder)
}
