package compose

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"goa.design/clue/log"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/capability"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
)

// ErrUnknownGenerator is returned when a marker is bound to a generator that
// is not registered.
var ErrUnknownGenerator = errors.New("unknown generator")

// discovery is the flat result of running every bound generator.
type discovery struct {
	components  []gen.Component
	failed      []model.TypeID
	diagnostics diagnostic.Diagnostics
}

// discover invokes each bound generator once per marked declaration. Markers
// are visited in name order, declarations in symbol-table order.
func (p *Processor) discover(ctx context.Context, round *Round, refl *decl.Reflection) (*discovery, error) {
	markers := slices.Clone(round.ActiveMarkers)
	slices.SortFunc(markers, func(a, b model.TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	out := &discovery{}
	failed := make(map[model.TypeID]struct{})

	for _, marker := range markers {
		binding, ok := round.Table.Markers[marker]
		if !ok || binding.Generator == "" {
			continue
		}

		g, ok := p.registry.Lookup(binding.Generator)
		if !ok {
			return nil, fmt.Errorf("marker %s: %w %q", marker, ErrUnknownGenerator, binding.Generator)
		}

		for _, d := range refl.MarkedWith(marker) {
			target := d.Enclosing().ID()
			if _, ok := failed[target]; ok {
				continue
			}

			res, err := compute(ctx, g, refl, d)
			if err != nil {
				log.Error(ctx, err, roundKV(round), log.KV{K: "target", V: target.String()},
					log.KV{K: "generator", V: g.Name()})
				out.diagnostics.AddError(diagnostic.CodeTargetFailed, err.Error(), target.String(), d.Ref().String())
				failed[target] = struct{}{}
				out.failed = append(out.failed, target)

				continue
			}

			out.diagnostics.Merge(res.Diagnostics)
			out.components = append(out.components, res.Component)
		}
	}

	return out, nil
}

// compute runs one generator, turning a panic into an error.
func compute(ctx context.Context, g capability.Generator, refl *decl.Reflection, d decl.Declaration) (out *capability.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked on %s: %v", g.Name(), d.Ref(), r)
		}
	}()

	return g.Compute(ctx, refl, d)
}

// group is the components contributed to one target.
type group struct {
	target     model.TypeID
	components []gen.Component
}

// groupByTarget folds components into groups ordered by first appearance.
// Components of targets in skip are dropped.
func groupByTarget(components []gen.Component, skip []model.TypeID) []group {
	index := make(map[model.TypeID]int)

	var groups []group

	for _, c := range components {
		if slices.Contains(skip, c.Target) {
			continue
		}

		i, ok := index[c.Target]
		if !ok {
			i = len(groups)
			index[c.Target] = i
			groups = append(groups, group{target: c.Target})
		}

		groups[i].components = append(groups[i].components, c)
	}

	return groups
}

func roundKV(round *Round) log.KV {
	return log.KV{K: "round", V: round.ID.String()}
}

// boundMarkers reports whether any active marker has a generator binding.
func boundMarkers(table *analyze.SymbolTable, active []model.TypeID) bool {
	for _, m := range active {
		if b, ok := table.Markers[m]; ok && b.Generator != "" {
			return true
		}
	}

	return false
}
