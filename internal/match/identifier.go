package match

import (
	"strings"

	"goa.design/goa/v3/codegen"
)

// Identifier is a property name with the case conversions generated code needs.
type Identifier struct {
	raw string
}

// NewIdentifier wraps a raw name such as "firstName" or "first_name".
func NewIdentifier(raw string) Identifier {
	return Identifier{raw: raw}
}

// String returns the raw name.
func (i Identifier) String() string { return i.raw }

// IsZero reports whether the identifier is empty.
func (i Identifier) IsZero() bool { return i.raw == "" }

// Camel returns the lowerCamelCase form ("firstName").
func (i Identifier) Camel() string {
	return codegen.CamelCase(i.raw, false, false)
}

// Pascal returns the UpperCamelCase form ("FirstName").
func (i Identifier) Pascal() string {
	return codegen.CamelCase(i.raw, true, false)
}

// ScreamingSnake returns the SCREAMING_SNAKE_CASE form ("FIRST_NAME").
func (i Identifier) ScreamingSnake() string {
	return strings.ToUpper(codegen.SnakeCase(i.raw))
}

// Key returns the normalized comparison key.
func (i Identifier) Key() string {
	return NormalizeIdent(i.raw)
}

// Matches reports whether two identifiers name the same property.
func (i Identifier) Matches(other Identifier) bool {
	return i.Key() == other.Key()
}
