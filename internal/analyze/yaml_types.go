package analyze

// DeclarationFile is the root of a YAML declaration file.
type DeclarationFile struct {
	// Version is the schema version (semver).
	Version string `yaml:"version"`
	// Markers binds marker names to generator names.
	Markers []MarkerDecl `yaml:"markers,omitempty"`
	// Packages lists declared packages.
	Packages []PackageDecl `yaml:"packages"`
}

// MarkerDecl declares a marker and the generator computing its contribution.
// Markers without a generator are plain flags (e.g. include/exclude markers).
type MarkerDecl struct {
	Name      string `yaml:"name"`
	Generator string `yaml:"generator,omitempty"`
}

// PackageDecl declares the types of one package.
type PackageDecl struct {
	Name  string     `yaml:"name"`
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares a class, interface, enum or marker.
type TypeDecl struct {
	Name           string            `yaml:"name"`
	Kind           string            `yaml:"kind,omitempty"`
	Modifiers      []string          `yaml:"modifiers,omitempty"`
	Markers        []string          `yaml:"markers,omitempty"`
	TypeParameters []TypeParamDecl   `yaml:"typeParameters,omitempty"`
	Superclass     string            `yaml:"superclass,omitempty"`
	Interfaces     []string          `yaml:"interfaces,omitempty"`
	Imports        []string          `yaml:"imports,omitempty"`
	Fields         []FieldDecl       `yaml:"fields,omitempty"`
	Methods        []MethodDecl      `yaml:"methods,omitempty"`
	Constructors   []ConstructorDecl `yaml:"constructors,omitempty"`
}

// TypeParamDecl declares a generic parameter.
type TypeParamDecl struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds,omitempty"`
}

// FieldDecl declares a field.
type FieldDecl struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Modifiers []string `yaml:"modifiers,omitempty"`
	Markers   []string `yaml:"markers,omitempty"`
}

// ParamDecl declares a method or constructor parameter.
type ParamDecl struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Markers []string `yaml:"markers,omitempty"`
}

// MethodDecl declares a method.
type MethodDecl struct {
	Name           string          `yaml:"name"`
	Returns        string          `yaml:"returns,omitempty"`
	TypeParameters []TypeParamDecl `yaml:"typeParameters,omitempty"`
	Parameters     []ParamDecl     `yaml:"parameters,omitempty"`
	Modifiers      []string        `yaml:"modifiers,omitempty"`
	Markers        []string        `yaml:"markers,omitempty"`
}

// ConstructorDecl declares a constructor.
type ConstructorDecl struct {
	TypeParameters []TypeParamDecl `yaml:"typeParameters,omitempty"`
	Parameters     []ParamDecl     `yaml:"parameters,omitempty"`
	Modifiers      []string        `yaml:"modifiers,omitempty"`
	Markers        []string        `yaml:"markers,omitempty"`
}
