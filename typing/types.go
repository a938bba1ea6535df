package typing

import "strings"

// DataType is the parent interface for all types in pycheck's model of
// Python.  The model is deliberately small: annotated primitives, functions,
// and the two gradual-typing escape hatches.
type DataType interface {
	// Repr returns a representative string of the type for purposes of error
	// reporting.
	Repr() string

	// equals is the internal, type-specific implementation of Equals.  It
	// should NEVER be called directly except by Equals.
	equals(DataType) bool
}

// -----------------------------------------------------------------------------

// PrimType represents a primitive type.  It should be one of the enumerated
// primitive types.
type PrimType int

// Enumeration of different primitive types.
const (
	PrimInteger = iota
	PrimString
	PrimBool
	PrimFloat
	PrimNone
)

func (pt PrimType) Repr() string {
	switch pt {
	case PrimInteger:
		return "int"
	case PrimString:
		return "str"
	case PrimBool:
		return "bool"
	case PrimFloat:
		return "float"
	default:
		// PrimNone
		return "None"
	}
}

func (pt PrimType) equals(other DataType) bool {
	if opt, ok := other.(PrimType); ok {
		return pt == opt
	}

	return false
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.
type FuncType struct {
	ParamTypes []DataType
	ReturnType DataType
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	for i, pt := range ft.ParamTypes {
		sb.WriteString(pt.Repr())

		if i < len(ft.ParamTypes)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.ReturnType.Repr())

	return sb.String()
}

func (ft *FuncType) equals(other DataType) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, pt := range ft.ParamTypes {
			if !Equals(pt, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equals(ft.ReturnType, oft.ReturnType)
	}

	return false
}

// -----------------------------------------------------------------------------

// UnknownType is the type of any expression whose type cannot be determined:
// a missing annotation, an unmodeled expression form, an unresolved name.  It
// is compatible with everything so that missing information never cascades
// into false errors.
type UnknownType struct{}

func (ut UnknownType) Repr() string {
	return "Unknown"
}

func (ut UnknownType) equals(other DataType) bool {
	_, ok := other.(UnknownType)
	return ok
}

// AnyType is the explicit gradual-typing escape hatch: the user-facing `Any`
// annotation.  Like UnknownType it is compatible with everything; unlike
// UnknownType it is deliberate rather than inferred.
type AnyType struct{}

func (at AnyType) Repr() string {
	return "Any"
}

func (at AnyType) equals(other DataType) bool {
	_, ok := other.(AnyType)
	return ok
}

// The singleton values used for all unknown and any types.
var (
	Unknown DataType = UnknownType{}
	Any     DataType = AnyType{}
)
