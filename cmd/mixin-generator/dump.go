package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"goa.design/clue/log"

	"mixin-generator/internal/capability"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/model"
	"mixin-generator/internal/plan"
)

// propertyDump is the printed form of a resolved property.
type propertyDump struct {
	Name     string
	Type     string
	Accessor string
	Source   string
	Writable bool
}

// memberDump is the printed form of a field, method or constructor.
type memberDump struct {
	Ref       string
	Name      string
	Type      string
	Enclosing string
	Markers   []string
}

// typeDump is the printed form of a type.
type typeDump struct {
	Type        string
	Creator     string
	Properties  []propertyDump
	Diagnostics []string
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dump prints the properties the copyable generator would use for a type, or
// the declaration of a single member when given a member ref.
func (e *env) dump(stdout io.Writer) int {
	ref, err := decl.ParseRef(e.opts.typ)
	if err != nil {
		log.Error(e.ctx, err)
		return exitError
	}

	table, err := e.loadSymbols()
	if err != nil {
		log.Error(e.ctx, err)
		return exitError
	}

	d, ok := decl.NewReflection(table).Resolve(ref)
	if !ok {
		log.Error(e.ctx, fmt.Errorf("unknown declaration %s", ref))
		return exitError
	}

	if td, ok := d.(*decl.TypeDeclaration); ok {
		dumpConfig.Fdump(stdout, e.describe(td))
	} else {
		dumpConfig.Fdump(stdout, describeMember(d))
	}

	return exitOK
}

func describeMember(d decl.Declaration) memberDump {
	out := memberDump{
		Ref:       d.Ref().String(),
		Name:      d.Name(),
		Type:      d.Type().Render(model.Qualified),
		Enclosing: d.Enclosing().Type().Render(model.Qualified),
	}

	for _, m := range d.Markers() {
		out.Markers = append(out.Markers, m.String())
	}

	return out
}

func (e *env) describe(td *decl.TypeDeclaration) typeDump {
	creator := capability.FindCreator(td, e.markers)

	res := plan.NewResolver(plan.Options{
		Include: e.markers.CopyableInclude,
		Exclude: e.markers.CopyableExclude,
	}).Resolve(td, creator)

	out := typeDump{Type: td.Type().Render(model.Qualified)}
	if creator != nil {
		out.Creator = creator.Ref().String()
	}

	for _, p := range res.Properties {
		out.Properties = append(out.Properties, propertyDump{
			Name:     p.Name.String(),
			Type:     p.Type.Render(model.Qualified),
			Accessor: p.Accessor,
			Source:   p.Source.String(),
			Writable: p.Writable(),
		})
	}

	for _, d := range res.Diagnostics.All() {
		out.Diagnostics = append(out.Diagnostics, d.String())
	}

	return out
}
