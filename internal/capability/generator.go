package capability

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
	"mixin-generator/internal/plan"
)

// ErrUnsupportedDeclaration is returned when a marker sits on a declaration
// the generator cannot handle.
var ErrUnsupportedDeclaration = errors.New("unsupported declaration")

// Generator computes one component for a marked declaration.
type Generator interface {
	// Name is the name markers bind to.
	Name() string
	Compute(ctx context.Context, refl *decl.Reflection, d decl.Declaration) (*Output, error)
}

// Output is the result of one generator invocation.
type Output struct {
	Component   gen.Component
	Diagnostics diagnostic.Diagnostics
}

// Registry maps generator names to generators.
type Registry struct {
	gens map[string]Generator
}

// NewRegistry creates a registry holding gens.
func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{gens: make(map[string]Generator, len(gens))}
	for _, g := range gens {
		r.Register(g)
	}

	return r
}

// DefaultRegistry returns a registry with the copyable and accessors generators.
func DefaultRegistry(renderer gen.Renderer, markers Markers) *Registry {
	return NewRegistry(NewCopyable(renderer, markers), NewAccessors(renderer, markers))
}

// Register adds or replaces a generator.
func (r *Registry) Register(g Generator) {
	r.gens[g.Name()] = g
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (Generator, bool) {
	g, ok := r.gens[name]
	return g, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gens))
	for name := range r.gens {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// view builds the template view of a property.
func view(p plan.Property) gen.PropertyView {
	return gen.PropertyView{
		Field:      p.Name.String(),
		Pascal:     p.Name.Pascal(),
		Camel:      p.Name.Camel(),
		SimpleType: p.Type.Render(model.Simple),
		Writable:   p.Writable(),
	}
}

// references returns the target followed by the names used by the property types.
func references(target *decl.TypeDeclaration, props plan.Properties) []model.TypeID {
	types := make([]model.Type, 0, len(props)+1)
	types = append(types, target.Type())

	for _, p := range props {
		types = append(types, p.Type)
	}

	return model.ReferencedNames(types...)
}

func unsupported(generator string, d decl.Declaration) error {
	return fmt.Errorf("%s: %w %s", generator, ErrUnsupportedDeclaration, d.Ref())
}
