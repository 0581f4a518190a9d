package capability

import (
	"context"
	"fmt"

	"mixin-generator/internal/decl"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
	"mixin-generator/internal/plan"
)

// AccessorsName is the generator name of Accessors.
const AccessorsName = "accessors"

// Accessors generates get<Name>() and, for non-final fields, set<Name>(value).
// On a type it covers every declared instance field not carrying the exclude
// marker; on a field it covers that field only.
type Accessors struct {
	renderer gen.Renderer
	resolver *plan.Resolver
}

// NewAccessors creates an Accessors generator.
func NewAccessors(renderer gen.Renderer, markers Markers) *Accessors {
	return &Accessors{
		renderer: renderer,
		resolver: plan.NewResolver(plan.Options{
			Exclude:        markers.DataExclude,
			FieldsOnly:     true,
			DeclaredOnly:   true,
			IncludePrivate: true,
		}),
	}
}

// Name implements Generator.
func (a *Accessors) Name() string { return AccessorsName }

// Compute implements Generator.
func (a *Accessors) Compute(_ context.Context, _ *decl.Reflection, d decl.Declaration) (*Output, error) {
	var (
		target *decl.TypeDeclaration
		props  plan.Properties
	)

	switch d := d.(type) {
	case *decl.TypeDeclaration:
		target = d
		props = a.resolver.Resolve(d, nil).Properties
	case *decl.FieldDeclaration:
		target = d.Enclosing()
		props = plan.Properties{plan.FieldProperty(d)}
	default:
		return nil, unsupported(AccessorsName, d)
	}

	views := make([]gen.PropertyView, len(props))
	for i, p := range props {
		views[i] = view(p)
	}

	body, err := a.renderer.Render(gen.TemplateAccessors, gen.AccessorsData{
		QualifiedType: target.Type().Render(model.Qualified),
		Properties:    views,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", AccessorsName, target.ID(), err)
	}

	return &Output{
		Component: gen.Component{
			Generator:  AccessorsName,
			Target:     target.ID(),
			References: references(target, props),
			Body:       body,
		},
	}, nil
}
