package plan

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/model"
)

var (
	includeID = model.TypeID{Package: "swizzle.Copyable", Name: "Include"}
	excludeID = model.TypeID{Package: "swizzle.Copyable", Name: "Exclude"}
	copyOpts  = Options{Include: includeID, Exclude: excludeID}
	intType   = model.Primitive{Prim: model.PrimitiveInt}
)

func reflect(t *testing.T, src string) *decl.Reflection {
	t.Helper()

	table, err := analyze.Parse([]byte(src))
	require.NoError(t, err)

	return decl.NewReflection(table)
}

func typeDecl(t *testing.T, refl *decl.Reflection, name string) *decl.TypeDeclaration {
	t.Helper()

	td, ok := refl.Type(model.TypeID{Package: "p", Name: name})
	require.True(t, ok, "type %s", name)

	return td
}

func accessors(ps Properties) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Accessor
	}

	return out
}

func TestResolver_Candidates(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: a, type: int}
          - {name: hidden, type: int, modifiers: [private]}
          - {name: COUNT, type: int, modifiers: [static]}
        methods:
          - {name: getB, returns: String}
          - {name: isC, returns: boolean}
          - {name: getD, returns: int, parameters: [{name: i, type: int}]}
          - {name: getE, returns: E, typeParameters: [{name: E}]}
          - {name: getaway, returns: int}
          - {name: compute, returns: int}
`)

	res := NewResolver(Options{}).Resolve(typeDecl(t, refl, "A"), nil)

	assert.Equal(t, []string{"a", "b", "c"}, res.Properties.Names())
	assert.Equal(t, []string{"a", "getB()", "isC()"}, accessors(res.Properties))
	assert.Equal(t, SourceField, res.Properties[0].Source)
	assert.Equal(t, SourceGetter, res.Properties[1].Source)
	assert.Equal(t, "java.lang.String", res.Properties[1].Type.Render(model.Qualified))
	assert.Empty(t, res.Diagnostics.All())
}

func TestResolver_Options(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: Base
        fields: [{name: inherited, type: int}]
      - name: A
        superclass: Base
        fields:
          - {name: a, type: int}
          - {name: secret, type: int, modifiers: [private]}
        methods:
          - {name: getB, returns: int}
`)
	a := typeDecl(t, refl, "A")

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{"default", Options{}, []string{"a", "b", "inherited"}},
		{"fields only", Options{FieldsOnly: true}, []string{"a", "inherited"}},
		{"declared only", Options{DeclaredOnly: true}, []string{"a", "b"}},
		{"private", Options{IncludePrivate: true, FieldsOnly: true, DeclaredOnly: true}, []string{"a", "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResolver(tt.opts).Resolve(a, nil)
			assert.Equal(t, tt.expected, res.Properties.Names())
		})
	}
}

func TestResolver_FirstRepresentativeWins(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: Named
        kind: interface
        methods: [{name: getFirstName, returns: String}]
      - name: A
        interfaces: [Named]
        fields: [{name: first_name, type: String}]
`)

	res := NewResolver(Options{}).Resolve(typeDecl(t, refl, "A"), nil)

	require.Len(t, res.Properties, 1)
	assert.Equal(t, "first_name", res.Properties[0].Accessor)
	assert.Equal(t, SourceField, res.Properties[0].Source)
}

func TestResolver_ExcludeDominance(t *testing.T) {
	// x is declared by the superclass and by two interfaces; the exclusion on
	// any one of them removes x regardless of traversal order.
	build := func(excludeOn int, swap bool) string {
		marker := func(i int) string {
			if i == excludeOn {
				return ", markers: [swizzle.Copyable.Exclude]"
			}

			return ""
		}

		ifaces := "[I1, I2]"
		if swap {
			ifaces = "[I2, I1]"
		}

		return `
packages:
  - name: p
    types:
      - name: S
        fields: [{name: x, type: int` + marker(0) + `}, {name: y, type: int}]
      - name: I1
        kind: interface
        methods: [{name: getX, returns: int` + marker(1) + `}]
      - name: I2
        kind: interface
        methods: [{name: getX, returns: int` + marker(2) + `}]
      - name: T
        superclass: S
        interfaces: ` + ifaces + `
`
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("an excluded name never survives", prop.ForAll(
		func(excludeOn int, swap bool) bool {
			table, err := analyze.Parse([]byte(build(excludeOn, swap)))
			if err != nil {
				return false
			}

			target, ok := decl.NewReflection(table).Type(model.TypeID{Package: "p", Name: "T"})
			if !ok {
				return false
			}

			res := NewResolver(copyOpts).Resolve(target, nil)
			_, hasX := res.Properties.Lookup("x")
			_, hasY := res.Properties.Lookup("y")

			return hasY && hasX == (excludeOn > 2)
		},
		gen.IntRange(0, 3),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestResolver_IncludeOptIn(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: a, type: int}
          - {name: b, type: int, markers: [swizzle.Copyable.Include]}
          - {name: c, type: int}
`)

	res := NewResolver(copyOpts).Resolve(typeDecl(t, refl, "A"), nil)

	require.Len(t, res.Properties, 1)
	assert.Equal(t, "b", res.Properties[0].Name.String())
	assert.True(t, res.Properties[0].Included)
}

func TestResolver_IncludeAndExcludeSameName(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: a, type: int, markers: [swizzle.Copyable.Include]}
          - {name: b, type: int}
        methods:
          - {name: getA, returns: int, markers: [swizzle.Copyable.Exclude]}
`)

	res := NewResolver(copyOpts).Resolve(typeDecl(t, refl, "A"), nil)

	// The exclusion removes a before the include rule runs, so nothing is
	// included any more and b survives.
	assert.Equal(t, []string{"b"}, res.Properties.Names())
}

func TestResolver_ConstructorOrder(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: a, type: int}
          - {name: b, type: String}
          - {name: c, type: int}
        constructors:
          - parameters: [{name: c, type: int}, {name: a, type: int}]
`)
	a := typeDecl(t, refl, "A")

	res := NewResolver(Options{}).Resolve(a, a.Constructors()[0])

	assert.Equal(t, []string{"c", "a"}, res.Properties.Names())
	assert.Empty(t, res.Diagnostics.All())
}

func TestResolver_Sentinel(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: weight, type: int}
          - {name: height, type: int}
        constructors:
          - parameters: [{name: weight, type: int}, {name: wieght, type: long}, {name: fullName, type: String}]
`)
	a := typeDecl(t, refl, "A")

	res := NewResolver(Options{}).Resolve(a, a.Constructors()[0])

	require.Len(t, res.Properties, 3)
	assert.Equal(t, []string{"weight", "NO_SUCH_PROPERTY_WIEGHT", "NO_SUCH_PROPERTY_FULL_NAME"}, accessors(res.Properties))
	assert.True(t, res.Properties[1].Synthetic())
	assert.Equal(t, "long", res.Properties[1].Type.Render(model.Simple))
	assert.Nil(t, res.Properties[1].Member)

	require.Len(t, res.Diagnostics.Infos, 2)
	info := res.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeNoSuchProperty, info.Code)
	assert.Equal(t, "p.A", info.Target)
	assert.Equal(t, "wieght", info.Element)
	assert.Equal(t, []string{"weight", "height"}, info.Suggestions)
	assert.False(t, res.Diagnostics.HasErrors())
}

func TestProperty_Writable(t *testing.T) {
	refl := reflect(t, `
packages:
  - name: p
    types:
      - name: A
        fields:
          - {name: a, type: int}
          - {name: b, type: int, modifiers: [final]}
        methods:
          - {name: getC, returns: int}
`)

	res := NewResolver(Options{}).Resolve(typeDecl(t, refl, "A"), nil)

	require.Len(t, res.Properties, 3)
	assert.True(t, res.Properties[0].Writable())
	assert.False(t, res.Properties[1].Writable())
	assert.False(t, res.Properties[2].Writable())
}

// memberNames are field names, getter names, or both spellings of the same
// property so that random inputs produce collisions.
var memberNames = []string{"a", "b", "getA", "isB", "c", "getC"}

func TestResolver_Idempotent(t *testing.T) {
	build := func(picks []int, marks []int) *decl.TypeDeclaration {
		sym := &analyze.TypeSymbol{
			ID:   model.TypeID{Package: "p", Name: "Gen"},
			Kind: analyze.DeclKindClass,
		}

		for i, pick := range picks {
			name := memberNames[pick]

			var markers analyze.Markers
			if i < len(marks) {
				switch marks[i] {
				case 1:
					markers = analyze.Markers{includeID}
				case 2:
					markers = analyze.Markers{excludeID}
				}
			}

			if len(name) > 1 {
				sym.Methods = append(sym.Methods, analyze.MethodSymbol{Name: name, Returns: intType, Markers: markers})
			} else {
				sym.Fields = append(sym.Fields, analyze.FieldSymbol{Name: name, Type: intType, Markers: markers})
			}
		}

		table := analyze.NewSymbolTable()
		table.Add(sym)

		td, _ := decl.NewReflection(table).Type(sym.ID)

		return td
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("resolution is idempotent", prop.ForAll(
		func(picks []int, marks []int) bool {
			target := build(picks, marks)
			r := NewResolver(copyOpts)

			first := r.Resolve(target, nil).Properties
			second := r.Resolve(target, nil).Properties

			return assert.ObjectsAreEqual(first.Names(), second.Names()) &&
				assert.ObjectsAreEqual(accessors(first), accessors(second))
		},
		gen.SliceOf(gen.IntRange(0, len(memberNames)-1)),
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.Property("names are unique", prop.ForAll(
		func(picks []int, marks []int) bool {
			seen := make(map[string]bool)

			for _, p := range NewResolver(copyOpts).Resolve(build(picks, marks), nil).Properties {
				if seen[p.Name.Key()] {
					return false
				}

				seen[p.Name.Key()] = true
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, len(memberNames)-1)),
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}

func TestPropertySource_String(t *testing.T) {
	assert.Equal(t, "field", SourceField.String())
	assert.Equal(t, "getter", SourceGetter.String())
	assert.Equal(t, "synthetic", SourceSynthetic.String())
	assert.Equal(t, "unknown", SourceUnknown.String())
}
