package decl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mixin-generator/internal/common"
	"mixin-generator/internal/model"
)

// RefKind identifies what a Ref points at.
type RefKind int

const (
	RefUnknown RefKind = iota
	RefType
	RefField
	RefMethod
	RefConstructor
	RefParameter
)

// String returns a human-readable representation of the RefKind.
func (k RefKind) String() string {
	switch k {
	case RefType:
		return "type"
	case RefField:
		return "field"
	case RefMethod:
		return "method"
	case RefConstructor:
		return "constructor"
	case RefParameter:
		return "parameter"
	default:
		return common.UnknownStr
	}
}

// Ref is a reference id into the symbol table.
// Member indexes the fields, methods or constructors of Type. For parameters,
// Of is the kind of the owning member and Param indexes its parameter list.
type Ref struct {
	Type   model.TypeID
	Kind   RefKind
	Member int
	Of     RefKind
	Param  int
}

// String renders e.g. "com.example.Point", "com.example.Point#field[1]" or
// "com.example.Point#constructor[0].parameter[2]".
func (r Ref) String() string {
	switch r.Kind {
	case RefType:
		return r.Type.String()
	case RefParameter:
		return fmt.Sprintf("%s#%s[%d].%s[%d]", r.Type, r.Of, r.Member, r.Kind, r.Param)
	default:
		return fmt.Sprintf("%s#%s[%d]", r.Type, r.Kind, r.Member)
	}
}

// ErrMalformedRef is returned by ParseRef.
var ErrMalformedRef = errors.New("malformed ref")

// ParseRef parses the String form of a type, field, method or constructor
// ref, e.g. "com.example.Point" or "com.example.Point#field[1]".
func ParseRef(s string) (Ref, error) {
	typ, member, ok := strings.Cut(s, "#")
	if typ == "" {
		return Ref{}, fmt.Errorf("%w %q: missing type", ErrMalformedRef, s)
	}

	ref := Ref{Type: model.ParseTypeID(typ), Kind: RefType}
	if !ok {
		return ref, nil
	}

	kind, index, ok := strings.Cut(member, "[")
	if !ok || !strings.HasSuffix(index, "]") {
		return Ref{}, fmt.Errorf("%w %q: expected kind[index]", ErrMalformedRef, s)
	}

	switch kind {
	case "field":
		ref.Kind = RefField
	case "method":
		ref.Kind = RefMethod
	case "constructor":
		ref.Kind = RefConstructor
	default:
		return Ref{}, fmt.Errorf("%w %q: unsupported kind %q", ErrMalformedRef, s, kind)
	}

	n, err := strconv.Atoi(strings.TrimSuffix(index, "]"))
	if err != nil || n < 0 {
		return Ref{}, fmt.Errorf("%w %q: bad index", ErrMalformedRef, s)
	}

	ref.Member = n

	return ref, nil
}
