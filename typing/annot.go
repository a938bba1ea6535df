package typing

// annotNames is the closed set of annotation names the checker understands.
var annotNames = map[string]DataType{
	"int":   PrimType(PrimInteger),
	"str":   PrimType(PrimString),
	"bool":  PrimType(PrimBool),
	"float": PrimType(PrimFloat),
	"None":  PrimType(PrimNone),
	"Any":   Any,
}

// ResolveAnnotation resolves a type annotation name to a type value.  An
// unrecognized name resolves to nothing: this is never an error on its own,
// and callers are expected to fall back to Unknown.
func ResolveAnnotation(name string) (DataType, bool) {
	dt, ok := annotNames[name]
	return dt, ok
}
