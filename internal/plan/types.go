package plan

import (
	"mixin-generator/internal/common"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/match"
	"mixin-generator/internal/model"
)

// SentinelPrefix starts the accessor of a property synthesized for a
// constructor parameter that matches nothing.
const SentinelPrefix = "NO_SUCH_PROPERTY_"

// PropertySource describes where a property comes from.
type PropertySource int

const (
	SourceUnknown PropertySource = iota
	SourceField                  // field access
	SourceGetter                 // get<Name>() or is<Name>()
	SourceSynthetic              // constructor parameter without a match
)

// String returns a human-readable representation of the PropertySource.
func (s PropertySource) String() string {
	switch s {
	case SourceField:
		return "field"
	case SourceGetter:
		return "getter"
	case SourceSynthetic:
		return "synthetic"
	default:
		return common.UnknownStr
	}
}

// Property is one resolved attribute.
type Property struct {
	// Name is the property name, "x" for both a field x and a getter getX().
	Name match.Identifier
	// Type is the member type under the target's substitution.
	Type model.Type
	// Accessor is the member expression reading the value: "x", "getX()", or
	// a sentinel for synthetic properties.
	Accessor string
	// Included is true if the backing member carries the include marker.
	Included bool
	// Excluded is true if the backing member carries the exclude marker.
	Excluded bool
	// Member is the backing field or method; nil for synthetic properties.
	Member decl.Member
	// Source describes the kind of backing member.
	Source PropertySource
}

// Synthetic reports whether no member backs the property.
func (p Property) Synthetic() bool {
	return p.Source == SourceSynthetic
}

// Writable reports whether the property is a non-final field.
func (p Property) Writable() bool {
	f, ok := p.Member.(*decl.FieldDeclaration)
	return ok && !f.IsFinal()
}

// Properties is an ordered list of properties.
type Properties []Property

// Names returns the raw property names in order.
func (ps Properties) Names() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name.String()
	}

	return out
}

// Lookup returns the property matching name after normalization.
func (ps Properties) Lookup(name string) (Property, bool) {
	key := match.NormalizeIdent(name)

	for _, p := range ps {
		if p.Name.Key() == key {
			return p, true
		}
	}

	return Property{}, false
}

// Sentinel returns the accessor text used for a parameter without a property.
func Sentinel(name match.Identifier) string {
	return SentinelPrefix + name.ScreamingSnake()
}

// Creator is a constructor or static factory whose parameters order the
// resolved properties.
type Creator interface {
	decl.Declaration
	Parameters() []*decl.ParameterDeclaration
}

// Options controls which members become candidates.
type Options struct {
	// Include opts members in; once any candidate carries it, only marked
	// candidates survive. Zero disables the rule.
	Include model.TypeID
	// Exclude drops every candidate sharing a name with a marked one.
	// Zero disables the rule.
	Exclude model.TypeID
	// FieldsOnly ignores getter-shaped methods.
	FieldsOnly bool
	// DeclaredOnly ignores inherited members.
	DeclaredOnly bool
	// IncludePrivate accepts private members.
	IncludePrivate bool
}

// Resolution is the result of resolving one target.
type Resolution struct {
	Properties  Properties
	Diagnostics diagnostic.Diagnostics
}
