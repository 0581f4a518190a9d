package model

import "strings"

//go:generate go tool stringer -type=PrimitiveKind -trimprefix=Primitive -output=primitivekind_string.go

type PrimitiveKind int

const (
	_ PrimitiveKind = iota // zero value is the invalid kind

	PrimitiveBoolean
	PrimitiveByte
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveChar
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveVoid

	// PrimitiveTotal is the number of kinds defined, including the invalid zero value
	PrimitiveTotal = int(iota)
)

// ParsePrimitive returns the kind for a primitive keyword such as "int".
func ParsePrimitive(keyword string) (PrimitiveKind, bool) {
	for k := PrimitiveBoolean; int(k) < PrimitiveTotal; k++ {
		if strings.ToLower(k.String()) == keyword {
			return k, true
		}
	}

	return 0, false
}

// IsNumeric reports whether the kind is an integral or floating point kind.
func (k PrimitiveKind) IsNumeric() bool {
	switch k {
	default:
		return false
	case PrimitiveByte, PrimitiveShort, PrimitiveInt, PrimitiveLong, PrimitiveChar,
		PrimitiveFloat, PrimitiveDouble:
		return true
	}
}
