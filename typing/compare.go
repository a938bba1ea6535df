package typing

// Equals returns if two types are structurally identical.  This operation is
// commutative.
func Equals(lhs, rhs DataType) bool {
	return lhs.equals(rhs)
}

// Compatible returns if a value of type `rhs` may be used where a value of
// type `lhs` is expected.  Either side being Unknown or Any makes the pair
// compatible; function types are compared element-wise; all other pairs
// require structural equality.  There is deliberately no numeric widening
// and no subtyping: an `int` is NOT compatible with a `float` target.  This
// operation is commutative.
func Compatible(lhs, rhs DataType) bool {
	if isEscape(lhs) || isEscape(rhs) {
		return true
	}

	if lft, ok := lhs.(*FuncType); ok {
		oft, ok := rhs.(*FuncType)
		if !ok || len(lft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, pt := range lft.ParamTypes {
			if !Compatible(pt, oft.ParamTypes[i]) {
				return false
			}
		}

		return Compatible(lft.ReturnType, oft.ReturnType)
	}

	return Equals(lhs, rhs)
}

// isEscape returns if a type is one of the gradual-typing escape hatches.
func isEscape(dt DataType) bool {
	switch dt.(type) {
	case UnknownType, AnyType:
		return true
	default:
		return false
	}
}
