package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/capability"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
)

func newRenderer(t *testing.T) gen.Renderer {
	t.Helper()

	r, err := gen.NewRenderer(0)
	require.NoError(t, err)

	return r
}

func newRound(t *testing.T, src string) *Round {
	t.Helper()

	table, err := analyze.Parse([]byte(src))
	require.NoError(t, err)

	return NewRound(table)
}

func process(t *testing.T, round *Round, sink gen.Sink, opts ...Option) *Report {
	t.Helper()

	renderer := newRenderer(t)
	registry := capability.DefaultRegistry(renderer, capability.DefaultMarkers())

	return NewProcessor(registry, renderer, sink, opts...).Process(context.Background(), round)
}

func id(qualified string) model.TypeID {
	return model.ParseTypeID(qualified)
}

func TestProcessor_Fixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			var symbols []byte

			want := make(map[string]string)

			for _, f := range ar.Files {
				switch {
				case f.Name == "symbols.yaml":
					symbols = f.Data
				case strings.HasPrefix(f.Name, "want/"):
					want[strings.TrimPrefix(f.Name, "want/")] = string(f.Data)
				}
			}

			require.NotNil(t, symbols, "fixture has no symbols.yaml")

			for _, strategy := range []Strategy{Sequential{}, Parallel{Workers: 2}} {
				sink := gen.NewMemorySink()
				report := process(t, newRound(t, string(symbols)), sink, WithStrategy(strategy))

				require.NoError(t, report.Diagnostics.Error())
				assert.ElementsMatch(t, slices.Sorted(maps.Keys(want)), sink.Names())

				for name, content := range want {
					got, ok := sink.Content(name)
					require.True(t, ok, name)
					assert.Equal(t, content, got, name)
				}
			}
		})
	}
}

func TestProcessor_ArtifactNaming(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Data, generator: accessors}
packages:
  - name: com.example
    types:
      - name: Point
        markers: [swizzle.Data]
        interfaces: [point_mixin]
        fields: [{name: a, type: int}]
`)
	sink := gen.NewMemorySink()

	report := process(t, round, sink)

	assert.Equal(t, []string{"com.example.PointMixin"}, sink.Names())
	assert.Equal(t, []string{"com.example.PointMixin"}, report.Emitted())

	origin, ok := sink.Origin("com.example.PointMixin")
	require.True(t, ok)
	assert.Equal(t, id("com.example.Point"), origin)

	content, _ := sink.Content("com.example.PointMixin")
	assert.Contains(t, content, "public interface PointMixin {")
}

func TestProcessor_SkippedTargets(t *testing.T) {
	ar, err := txtar.ParseFile(filepath.Join("testdata", "skipped.txtar"))
	require.NoError(t, err)

	sink := gen.NewMemorySink()
	report := process(t, newRound(t, string(ar.Files[0].Data)), sink)

	assert.Empty(t, sink.Names())
	assert.Zero(t, report.Diagnostics.Len())

	plain, ok := report.Result(id("com.example.Plain"))
	require.True(t, ok)
	assert.Equal(t, OutcomeSkipped, plain.Outcome)
	assert.Equal(t, "0 contract interfaces", plain.Reason)

	twin, ok := report.Result(id("com.example.Twin"))
	require.True(t, ok)
	assert.Equal(t, OutcomeSkipped, twin.Outcome)
	assert.Equal(t, "2 contract interfaces", twin.Reason)
}

func TestProcessor_ContractMarker(t *testing.T) {
	src := `
markers:
  - {name: swizzle.Data, generator: accessors}
packages:
  - name: com.example
    types:
      - name: Named
        kind: interface
        markers: [custom.Mixin]
      - name: Point
        markers: [swizzle.Data]
        interfaces: [Named]
        fields: [{name: a, type: int}]
`

	sink := gen.NewMemorySink()
	process(t, newRound(t, src), sink)
	assert.Empty(t, sink.Names())

	sink = gen.NewMemorySink()
	process(t, newRound(t, src), sink, WithContractMarker(id("custom.Mixin")))
	assert.Equal(t, []string{"com.example.Named"}, sink.Names())
}

func TestProcessor_EmitFailureIsIsolated(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Data, generator: accessors}
packages:
  - name: com.example
    types:
      - name: A
        markers: [swizzle.Data]
        interfaces: [AMixin]
        fields: [{name: a, type: int}]
      - name: B
        markers: [swizzle.Data]
        interfaces: [BMixin]
        fields: [{name: b, type: int}]
`)
	sink := gen.NewMemorySink()
	sink.Fail = func(name string) error {
		if name == "com.example.AMixin" {
			return errors.New("disk full")
		}

		return nil
	}

	report := process(t, round, sink, WithStrategy(Parallel{}))

	assert.Equal(t, []string{"com.example.BMixin"}, sink.Names())

	a, _ := report.Result(id("com.example.A"))
	assert.Equal(t, OutcomeFailed, a.Outcome)

	b, _ := report.Result(id("com.example.B"))
	assert.Equal(t, OutcomeEmitted, b.Outcome)

	require.Len(t, report.Diagnostics.Errors, 1)
	d := report.Diagnostics.Errors[0]
	assert.Equal(t, diagnostic.CodeEmitFailed, d.Code)
	assert.Equal(t, "com.example.A", d.Target)
	assert.Contains(t, d.Message, "disk full")
	assert.NotEmpty(t, d.Stack)
}

type panicSink struct {
	gen.Sink
}

func (s panicSink) Create(name string, origin model.TypeID) (io.WriteCloser, error) {
	if strings.HasSuffix(name, "AMixin") {
		panic("boom")
	}

	return s.Sink.Create(name, origin)
}

func TestProcessor_PanicIsIsolated(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Data, generator: accessors}
packages:
  - name: com.example
    types:
      - name: A
        markers: [swizzle.Data]
        interfaces: [AMixin]
      - name: B
        markers: [swizzle.Data]
        interfaces: [BMixin]
`)
	mem := gen.NewMemorySink()

	report := process(t, round, panicSink{Sink: mem})

	assert.Equal(t, []string{"com.example.BMixin"}, mem.Names())
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeTargetFailed, report.Diagnostics.Errors[0].Code)
	assert.Contains(t, report.Diagnostics.Errors[0].Message, "boom")
	assert.NotEmpty(t, report.Diagnostics.Errors[0].Stack)
}

func TestProcessor_UnknownGenerator(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Data, generator: accessors}
  - {name: swizzle.Fancy, generator: fancy}
packages:
  - name: com.example
    types:
      - name: A
        markers: [swizzle.Data]
        interfaces: [AMixin]
`)
	sink := gen.NewMemorySink()

	report := process(t, round, sink)

	assert.Empty(t, sink.Names())
	assert.Empty(t, report.Results)
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeRoundFailed, report.Diagnostics.Errors[0].Code)
	assert.Contains(t, report.Diagnostics.Errors[0].Message, `unknown generator "fancy"`)
	assert.NotEmpty(t, report.Diagnostics.Errors[0].Stack)
}

type stubGenerator struct {
	name string
	fn   func(d decl.Declaration) (*capability.Output, error)
}

func (g stubGenerator) Name() string { return g.name }

func (g stubGenerator) Compute(_ context.Context, _ *decl.Reflection, d decl.Declaration) (*capability.Output, error) {
	return g.fn(d)
}

func TestProcessor_GeneratorFailure(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Stub, generator: stub}
packages:
  - name: com.example
    types:
      - name: Bad
        markers: [swizzle.Stub]
        interfaces: [BadMixin]
      - name: Worse
        markers: [swizzle.Stub]
        interfaces: [WorseMixin]
      - name: Good
        markers: [swizzle.Stub]
        interfaces: [GoodMixin]
`)

	registry := capability.NewRegistry(stubGenerator{name: "stub", fn: func(d decl.Declaration) (*capability.Output, error) {
		switch d.Name() {
		case "Bad":
			return nil, fmt.Errorf("cannot handle %s", d.Name())
		case "Worse":
			panic("broken generator")
		}

		return &capability.Output{Component: gen.Component{
			Generator: "stub",
			Target:    d.Enclosing().ID(),
			Body:      "\n    void stub();\n",
		}}, nil
	}})

	sink := gen.NewMemorySink()
	renderer := newRenderer(t)
	report := NewProcessor(registry, renderer, sink).Process(context.Background(), round)

	assert.Equal(t, []string{"com.example.GoodMixin"}, sink.Names())

	bad, _ := report.Result(id("com.example.Bad"))
	assert.Equal(t, OutcomeFailed, bad.Outcome)

	worse, _ := report.Result(id("com.example.Worse"))
	assert.Equal(t, OutcomeFailed, worse.Outcome)

	require.Len(t, report.Diagnostics.Errors, 2)
	assert.Equal(t, diagnostic.CodeTargetFailed, report.Diagnostics.Errors[0].Code)
	assert.Equal(t, "com.example.Bad", report.Diagnostics.Errors[0].Target)
	assert.Contains(t, report.Diagnostics.Errors[1].Message, "broken generator")

	content, _ := sink.Content("com.example.GoodMixin")
	assert.Contains(t, content, "void stub();")
}

func TestProcessor_NothingToDo(t *testing.T) {
	round := newRound(t, `
markers:
  - {name: swizzle.Data, generator: accessors}
packages:
  - name: com.example
    types:
      - name: A
        markers: [swizzle.Data]
        interfaces: [AMixin]
`)

	over := *round
	over.Over = true

	inactive := *round
	inactive.ActiveMarkers = nil

	for _, r := range []*Round{&over, &inactive} {
		sink := gen.NewMemorySink()
		report := process(t, r, sink)

		assert.Equal(t, round.ID, report.RoundID)
		assert.Empty(t, report.Results)
		assert.Empty(t, sink.Names())
	}
}

func TestProcessor_ParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder

	sb.WriteString("markers:\n  - {name: swizzle.Data, generator: accessors}\n")
	sb.WriteString("  - {name: swizzle.Copyable, generator: copyable}\n")
	sb.WriteString("packages:\n  - name: com.example\n    types:\n")

	for i := range 24 {
		fmt.Fprintf(&sb, "      - name: T%02d\n", i)
		sb.WriteString("        markers: [swizzle.Data, swizzle.Copyable]\n")
		fmt.Fprintf(&sb, "        interfaces: [T%02dMixin]\n", i)
		sb.WriteString("        fields: [{name: a, type: int}, {name: b, type: String}]\n")
		sb.WriteString("        constructors: [{parameters: [{name: a, type: int}, {name: b, type: String}]}]\n")
	}

	table, err := analyze.Parse([]byte(sb.String()))
	require.NoError(t, err)

	seqSink := gen.NewMemorySink()
	seq := process(t, NewRound(table), seqSink)

	parSink := gen.NewMemorySink()
	par := process(t, NewRound(table), parSink, WithStrategy(Parallel{Workers: 4}))

	assert.Len(t, seq.Emitted(), 24)
	assert.Equal(t, seq.Results, par.Results)
	assert.Equal(t, seqSink.Names(), parSink.Names())

	for _, name := range seqSink.Names() {
		want, _ := seqSink.Content(name)
		got, _ := parSink.Content(name)
		assert.Equal(t, want, got, name)
	}
}

func TestProcessor_ImportsCoverReferences(t *testing.T) {
	ar, err := txtar.ParseFile(filepath.Join("testdata", "supermixin.txtar"))
	require.NoError(t, err)

	round := newRound(t, string(ar.Files[0].Data))
	refl := decl.NewReflection(round.Table)
	renderer := newRenderer(t)
	p := NewProcessor(capability.DefaultRegistry(renderer, capability.DefaultMarkers()), renderer, gen.NewMemorySink())

	found, err := p.discover(context.Background(), round, refl)
	require.NoError(t, err)

	groups := groupByTarget(found.components, nil)
	require.Len(t, groups, 2)

	for _, g := range groups {
		target, ok := refl.Type(g.target)
		require.True(t, ok)

		m, n := p.assemble(refl, target, g.components)
		require.NotNil(t, m)
		assert.Equal(t, 1, n)

		for _, ref := range m.References() {
			if ref.Package == m.Package {
				continue
			}

			assert.Contains(t, m.Imports, ref.String(), "%s in %s", ref, m.QualifiedName())
		}

		assert.True(t, slices.IsSorted(m.Imports))
	}
}

func TestGroupByTarget(t *testing.T) {
	a, b, c := id("p.A"), id("p.B"), id("p.C")
	components := []gen.Component{
		{Target: b, Body: "1"},
		{Target: a, Body: "2"},
		{Target: b, Body: "3"},
		{Target: c, Body: "4"},
	}

	groups := groupByTarget(components, []model.TypeID{c})

	require.Len(t, groups, 2)
	assert.Equal(t, b, groups[0].target)
	assert.Equal(t, []string{"1", "3"}, bodies(groups[0].components))
	assert.Equal(t, a, groups[1].target)
	assert.Len(t, components, 4)
}

func bodies(cs []gen.Component) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Body
	}

	return out
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Emitted", OutcomeEmitted.String())
	assert.Equal(t, "Failed", OutcomeFailed.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
