package capability

import (
	"context"
	"fmt"
	"strings"

	"mixin-generator/internal/decl"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
	"mixin-generator/internal/plan"
)

// CopyableName is the generator name of Copyable.
const CopyableName = "copyable"

// Copyable generates with<Name> operations returning a copy of the target
// with one property changed.
type Copyable struct {
	renderer gen.Renderer
	markers  Markers
}

// NewCopyable creates a Copyable generator.
func NewCopyable(renderer gen.Renderer, markers Markers) *Copyable {
	return &Copyable{renderer: renderer, markers: markers}
}

// Name implements Generator.
func (c *Copyable) Name() string { return CopyableName }

// Compute implements Generator. Only type declarations are supported.
func (c *Copyable) Compute(_ context.Context, _ *decl.Reflection, d decl.Declaration) (*Output, error) {
	target, ok := d.(*decl.TypeDeclaration)
	if !ok {
		return nil, unsupported(CopyableName, d)
	}

	creator := FindCreator(target, c.markers)

	resolver := plan.NewResolver(plan.Options{
		Include: c.markers.CopyableInclude,
		Exclude: c.markers.CopyableExclude,
	})

	res := resolver.Resolve(target, creator)

	qualified := target.Type().Render(model.Qualified)

	var body strings.Builder

	for i, p := range res.Properties {
		data := gen.CopyMethodData{QualifiedType: qualified, Property: view(p)}

		name := gen.TemplateAbstractCopyMethod
		if creator != nil {
			name = gen.TemplateCopyMethod
			data.Invocation = invocation(target, creator, res.Properties, i)
		}

		out, err := c.renderer.Render(name, data)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", CopyableName, target.ID(), err)
		}

		body.WriteString(out)
	}

	return &Output{
		Component: gen.Component{
			Generator:  CopyableName,
			Target:     target.ID(),
			References: references(target, res.Properties),
			Body:       body.String(),
		},
		Diagnostics: res.Diagnostics,
	}, nil
}

// invocation renders the creator call forwarding every property but the
// changed one through its accessor.
func invocation(target *decl.TypeDeclaration, creator plan.Creator, props plan.Properties, changed int) string {
	qualified := target.Type().Render(model.Qualified)

	var start string

	switch creator.(type) {
	case *decl.ConstructorDeclaration:
		start = "new " + qualified
	default:
		start = target.ID().String() + "." + creator.Name()
	}

	args := make([]string, len(props))
	for i, p := range props {
		if i == changed {
			args[i] = gen.ChangedPlaceholder
		} else {
			args[i] = "((" + qualified + ") this)." + p.Accessor
		}
	}

	return start + "(" + strings.Join(args, ", ") + ")"
}

// FindCreator returns the constructor or static factory copies are built
// with. Constructors carrying the copy-constructor marker come first, then
// static methods carrying the copy-factory marker. Otherwise a concrete type
// uses its non-private constructor with the most parameters, the first one
// on ties. Returns nil when there is none.
func FindCreator(target *decl.TypeDeclaration, markers Markers) plan.Creator {
	ctors := target.Constructors()

	for _, c := range ctors {
		if c.HasMarker(markers.CopyConstructor) {
			return c
		}
	}

	for _, m := range target.StaticMethods() {
		if m.HasMarker(markers.CopyFactory) {
			return m
		}
	}

	if target.IsAbstract() {
		return nil
	}

	var best *decl.ConstructorDeclaration

	for _, c := range ctors {
		if c.IsPrivate() {
			continue
		}

		if best == nil || len(c.Parameters()) > len(best.Parameters()) {
			best = c
		}
	}

	if best == nil {
		return nil
	}

	return best
}
