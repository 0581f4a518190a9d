package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
)

type fixture struct {
	refl     *decl.Reflection
	renderer gen.Renderer
	markers  Markers
}

func newFixture(t *testing.T, src string) *fixture {
	t.Helper()

	table, err := analyze.Parse([]byte(src))
	require.NoError(t, err)

	renderer, err := gen.NewRenderer(0)
	require.NoError(t, err)

	return &fixture{refl: decl.NewReflection(table), renderer: renderer, markers: DefaultMarkers()}
}

func (f *fixture) typ(t *testing.T, name string) *decl.TypeDeclaration {
	t.Helper()

	td, ok := f.refl.Type(model.TypeID{Package: "com.example", Name: name})
	require.True(t, ok)

	return td
}

func (f *fixture) copyable(t *testing.T, name string) *Output {
	t.Helper()

	out, err := NewCopyable(f.renderer, f.markers).Compute(context.Background(), f.refl, f.typ(t, name))
	require.NoError(t, err)

	return out
}

func (f *fixture) accessors(t *testing.T, d decl.Declaration) *Output {
	t.Helper()

	out, err := NewAccessors(f.renderer, f.markers).Compute(context.Background(), f.refl, d)
	require.NoError(t, err)

	return out
}

func TestCopyable_ScenarioA(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Point
        markers: [swizzle.Copyable]
        interfaces: [PointCopyable]
        fields:
          - {name: a, type: int, modifiers: [final]}
          - {name: b, type: String, modifiers: [final]}
        constructors:
          - parameters: [{name: a, type: int}, {name: b, type: String}]
`)

	out := f.copyable(t, "Point")

	assert.Equal(t, `
    default com.example.Point withA(int a) {
        return new com.example.Point(a, ((com.example.Point) this).b);
    }

    default com.example.Point withB(String b) {
        return new com.example.Point(((com.example.Point) this).a, b);
    }
`, out.Component.Body)

	assert.Equal(t, CopyableName, out.Component.Generator)
	assert.Equal(t, model.TypeID{Package: "com.example", Name: "Point"}, out.Component.Target)
	assert.Equal(t, []model.TypeID{
		{Package: "com.example", Name: "Point"},
		{Package: "java.lang", Name: "String"},
	}, out.Component.References)
	assert.Zero(t, out.Diagnostics.Len())
}

func TestCopyable_Factory(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Vec
        fields:
          - {name: x, type: int}
          - {name: y, type: int}
        constructors:
          - parameters: [{name: x, type: int}, {name: y, type: int}, {name: z, type: int}]
        methods:
          - name: of
            returns: Vec
            modifiers: [static]
            markers: [swizzle.CopyFactory]
            parameters: [{name: x, type: int}, {name: y, type: int}]
`)

	out := f.copyable(t, "Vec")

	assert.Contains(t, out.Component.Body, "return com.example.Vec.of(x, ((com.example.Vec) this).y);")
	assert.Contains(t, out.Component.Body, "return com.example.Vec.of(((com.example.Vec) this).x, y);")
}

func TestCopyable_GenericTarget(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Box
        typeParameters: [{name: T}]
        fields: [{name: value, type: T}]
        methods: [{name: getLabel, returns: String}]
        constructors:
          - parameters: [{name: value, type: T}, {name: label, type: String}]
`)

	out := f.copyable(t, "Box")

	assert.Equal(t, `
    default com.example.Box<T> withValue(T value) {
        return new com.example.Box<T>(value, ((com.example.Box<T>) this).getLabel());
    }

    default com.example.Box<T> withLabel(String label) {
        return new com.example.Box<T>(((com.example.Box<T>) this).value, label);
    }
`, out.Component.Body)
}

func TestCopyable_UnmatchedParameter(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Size
        fields: [{name: weight, type: int}]
        constructors:
          - parameters: [{name: wieght, type: int}]
`)

	out := f.copyable(t, "Size")

	assert.Contains(t, out.Component.Body, "return new com.example.Size(wieght);")
	require.Len(t, out.Diagnostics.Infos, 1)
	assert.Equal(t, []string{"weight"}, out.Diagnostics.Infos[0].Suggestions)

	// Only the changed argument is replaced, so the sentinel shows when
	// another parameter is forwarded.
	f = newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Size
        fields: [{name: a, type: int}]
        constructors:
          - parameters: [{name: a, type: int}, {name: wieght, type: int}]
`)

	out = f.copyable(t, "Size")
	assert.Contains(t, out.Component.Body, "((com.example.Size) this).NO_SUCH_PROPERTY_WIEGHT")
}

func TestCopyable_AbstractWithoutCreator(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Shape
        modifiers: [abstract]
        fields: [{name: name, type: String}]
        constructors:
          - parameters: [{name: name, type: String}]
`)

	out := f.copyable(t, "Shape")

	assert.Equal(t, "\n    com.example.Shape withName(String name);\n", out.Component.Body)
}

func TestFindCreator(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Marked
        constructors:
          - parameters: [{name: a, type: int}, {name: b, type: int}]
          - parameters: [{name: a, type: int}]
            markers: [swizzle.CopyConstructor]
        methods:
          - {name: of, returns: Marked, modifiers: [static], markers: [swizzle.CopyFactory]}
      - name: Factory
        constructors:
          - parameters: [{name: a, type: int}, {name: b, type: int}]
        methods:
          - {name: make, returns: Factory, markers: [swizzle.CopyFactory]}
          - {name: of, returns: Factory, modifiers: [static], markers: [swizzle.CopyFactory]}
      - name: Widest
        constructors:
          - parameters: [{name: a, type: int}]
          - parameters: [{name: a, type: int}, {name: b, type: int}, {name: c, type: int}]
            modifiers: [private]
          - parameters: [{name: a, type: int}, {name: b, type: int}]
          - parameters: [{name: x, type: int}, {name: y, type: int}]
      - name: Abstract
        modifiers: [abstract]
        constructors:
          - parameters: [{name: a, type: int}]
      - name: Bare
`)
	markers := DefaultMarkers()

	marked := FindCreator(f.typ(t, "Marked"), markers)
	require.NotNil(t, marked)
	assert.Equal(t, "com.example.Marked#constructor[1]", marked.Ref().String())

	factory := FindCreator(f.typ(t, "Factory"), markers)
	require.NotNil(t, factory)
	assert.Equal(t, "of", factory.Name())

	widest := FindCreator(f.typ(t, "Widest"), markers)
	require.NotNil(t, widest)
	assert.Equal(t, "com.example.Widest#constructor[2]", widest.Ref().String())

	assert.Nil(t, FindCreator(f.typ(t, "Abstract"), markers))
	assert.Nil(t, FindCreator(f.typ(t, "Bare"), markers))
}

func TestAccessors_ScenarioB(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Point
        markers: [swizzle.Data]
        fields:
          - {name: a, type: int}
          - {name: b, type: String}
`)

	out := f.accessors(t, f.typ(t, "Point"))

	assert.Equal(t, `
    default int getA() {
        return ((com.example.Point) this).a;
    }

    default void setA(int a) {
        ((com.example.Point) this).a = a;
    }

    default String getB() {
        return ((com.example.Point) this).b;
    }

    default void setB(String b) {
        ((com.example.Point) this).b = b;
    }
`, out.Component.Body)
	assert.Equal(t, AccessorsName, out.Component.Generator)
}

func TestAccessors_ScenarioC(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Id
        markers: [swizzle.Data]
        fields:
          - {name: value, type: long, modifiers: [private, final]}
`)

	out := f.accessors(t, f.typ(t, "Id"))

	assert.Contains(t, out.Component.Body, "default long getValue()")
	assert.NotContains(t, out.Component.Body, "setValue")
}

func TestAccessors_TypeMarkerScope(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Base
        fields: [{name: inherited, type: int}]
      - name: Item
        superclass: Base
        markers: [swizzle.Data]
        fields:
          - {name: name, type: String}
          - {name: cache, type: String, markers: [swizzle.Data.Exclude]}
          - {name: COUNT, type: int, modifiers: [static]}
        methods:
          - {name: getTitle, returns: String}
`)

	body := f.accessors(t, f.typ(t, "Item")).Component.Body

	assert.Contains(t, body, "getName()")
	assert.NotContains(t, body, "Cache")
	assert.NotContains(t, body, "Count")
	assert.NotContains(t, body, "Inherited")
	assert.NotContains(t, body, "getTitle")
}

func TestAccessors_FieldMarker(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Item
        typeParameters: [{name: T}]
        fields:
          - {name: tags, type: "java.util.List<T>", markers: [swizzle.Data]}
          - {name: other, type: int}
`)

	field := f.typ(t, "Item").Fields()[0]
	out := f.accessors(t, field)

	assert.Equal(t, model.TypeID{Package: "com.example", Name: "Item"}, out.Component.Target)
	assert.Contains(t, out.Component.Body, "default List<T> getTags()")
	assert.Contains(t, out.Component.Body, "((com.example.Item<T>) this).tags = tags;")
	assert.NotContains(t, out.Component.Body, "Other")
	assert.Contains(t, out.Component.References, model.TypeID{Package: "java.util", Name: "List"})
}

func TestGenerators_UnsupportedDeclaration(t *testing.T) {
	f := newFixture(t, `
packages:
  - name: com.example
    types:
      - name: Item
        fields: [{name: a, type: int}]
        methods: [{name: run}]
`)
	item := f.typ(t, "Item")

	_, err := NewCopyable(f.renderer, f.markers).Compute(context.Background(), f.refl, item.Fields()[0])
	assert.ErrorIs(t, err, ErrUnsupportedDeclaration)

	_, err = NewAccessors(f.renderer, f.markers).Compute(context.Background(), f.refl, item.Methods()[0])
	assert.ErrorIs(t, err, ErrUnsupportedDeclaration)
}

func TestRegistry(t *testing.T) {
	renderer, err := gen.NewRenderer(0)
	require.NoError(t, err)

	r := DefaultRegistry(renderer, DefaultMarkers())

	assert.Equal(t, []string{AccessorsName, CopyableName}, r.Names())

	g, ok := r.Lookup(CopyableName)
	require.True(t, ok)
	assert.Equal(t, CopyableName, g.Name())

	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}
