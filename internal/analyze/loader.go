package analyze

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"mixin-generator/internal/model"
)

// SupportedVersions is the semver constraint declaration files must satisfy.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// ErrUnsupportedVersion is returned for declaration files outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported declaration file version")

// Loader parses declaration files and builds a symbol table.
type Loader struct {
	constraint *semver.Constraints
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		panic(fmt.Sprintf("invalid version constraint %q: %v", SupportedVersions, err))
	}

	return &Loader{constraint: c}
}

// LoadFiles loads the given declaration files into a single symbol table.
// Types in later files may refer to types declared in earlier ones and vice versa.
func (l *Loader) LoadFiles(paths ...string) (*SymbolTable, error) {
	files := make([]*DeclarationFile, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
		}

		df, err := l.decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		files = append(files, df)
	}

	return l.build(files...)
}

// Parse parses YAML data into a symbol table.
func (l *Loader) Parse(data []byte) (*SymbolTable, error) {
	df, err := l.decode(data)
	if err != nil {
		return nil, err
	}

	return l.build(df)
}

// LoadFile loads a single declaration file with a default Loader.
func LoadFile(path string) (*SymbolTable, error) {
	return NewLoader().LoadFiles(path)
}

// Parse parses a declaration file with a default Loader.
func Parse(data []byte) (*SymbolTable, error) {
	return NewLoader().Parse(data)
}

func (l *Loader) decode(data []byte) (*DeclarationFile, error) {
	var df DeclarationFile

	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&df)

	if err := l.checkVersion(df.Version); err != nil {
		return nil, err
	}

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DeclarationFile) {
	if df.Version == "" {
		df.Version = "1.0.0"
	}

	for i := range df.Packages {
		for j := range df.Packages[i].Types {
			if df.Packages[i].Types[j].Kind == "" {
				df.Packages[i].Types[j].Kind = "class"
			}
		}
	}
}

func (l *Loader) checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrUnsupportedVersion, version, err)
	}

	if !l.constraint.Check(v) {
		return fmt.Errorf("%w %q: want %s", ErrUnsupportedVersion, version, SupportedVersions)
	}

	return nil
}

// build registers every declaration first, then resolves type expressions so
// declarations may refer to each other regardless of order.
func (l *Loader) build(files ...*DeclarationFile) (*SymbolTable, error) {
	table := NewSymbolTable()

	type pending struct {
		sym  *TypeSymbol
		decl *TypeDecl
	}

	var todo []pending

	for _, df := range files {
		if table.Version == "" {
			table.Version = df.Version
		}

		for _, m := range df.Markers {
			if m.Generator == "" {
				continue
			}

			table.Bind(&MarkerBinding{ID: model.ParseTypeID(m.Name), Generator: m.Generator})
		}

		for pi := range df.Packages {
			pkg := &df.Packages[pi]

			for ti := range pkg.Types {
				decl := &pkg.Types[ti]

				kind := ParseDeclKind(decl.Kind)
				if kind == DeclKindUnknown {
					return nil, fmt.Errorf("type %s.%s: unknown kind %q", pkg.Name, decl.Name, decl.Kind)
				}

				sym := &TypeSymbol{
					ID:        model.TypeID{Package: pkg.Name, Name: decl.Name},
					Kind:      kind,
					Modifiers: Modifiers(decl.Modifiers),
				}

				if table.GetType(sym.ID) != nil {
					return nil, fmt.Errorf("type %s declared twice", sym.ID)
				}

				table.Add(sym)
				todo = append(todo, pending{sym: sym, decl: decl})
			}
		}
	}

	for _, p := range todo {
		if err := resolveType(table, p.sym, p.decl); err != nil {
			return nil, fmt.Errorf("type %s: %w", p.sym.ID, err)
		}
	}

	return table, nil
}
