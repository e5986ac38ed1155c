package expr

// IsWellTyped reports whether e and every sub-expression reports a concrete
// DataType (no Unknown) and every operator's operand types are compatible
// under the algebra's (loose, implicit-cast-friendly) rules: arithmetic and
// comparison accept any pairing of numeric types, logical operators require
// Bool operands.
func IsWellTyped(e Expression) bool {
	return wellTyped(e, false)
}

// IsStrictlyTyped additionally requires that binary operators' operand types
// match exactly, with no implicit widening (e.g. Int64 compared to Float64 is
// well-typed but not strictly typed). ReduceCasts consults this to decide
// whether collapsing a Cast pair would change the plan's observable typing.
func IsStrictlyTyped(e Expression) bool {
	return wellTyped(e, true)
}

func wellTyped(e Expression, strict bool) bool {
	if e == nil {
		return true
	}
	if e.DataType() == Unknown {
		return false
	}
	switch v := e.(type) {
	case *Arithmetic:
		if !v.Left.IsResolved() || !v.Right.IsResolved() {
			return false
		}
		if !v.Left.DataType().numeric() || !v.Right.DataType().numeric() {
			return false
		}
		if strict && v.Left.DataType() != v.Right.DataType() {
			return false
		}
		return wellTyped(v.Left, strict) && wellTyped(v.Right, strict)
	case *Comparison:
		if !v.Left.IsResolved() || !v.Right.IsResolved() {
			return false
		}
		if strict && v.Left.DataType() != v.Right.DataType() {
			return false
		}
		return wellTyped(v.Left, strict) && wellTyped(v.Right, strict)
	case *And:
		return v.Left.DataType() == Bool && v.Right.DataType() == Bool &&
			wellTyped(v.Left, strict) && wellTyped(v.Right, strict)
	case *Or:
		return v.Left.DataType() == Bool && v.Right.DataType() == Bool &&
			wellTyped(v.Left, strict) && wellTyped(v.Right, strict)
	case *Not:
		return v.Child.DataType() == Bool && wellTyped(v.Child, strict)
	case *If:
		if v.Cond.DataType() != Bool {
			return false
		}
		if strict && v.Then.DataType() != v.Else.DataType() {
			return false
		}
		return wellTyped(v.Cond, strict) && wellTyped(v.Then, strict) && wellTyped(v.Else, strict)
	case *Coalesce:
		for i, a := range v.Args {
			if !wellTyped(a, strict) {
				return false
			}
			if strict && i > 0 && a.DataType() != v.Args[0].DataType() {
				return false
			}
		}
		return true
	case *Cast:
		return wellTyped(v.Child, strict)
	case *IsNull:
		return wellTyped(v.Child, strict)
	case *IsNotNull:
		return wellTyped(v.Child, strict)
	case *Alias:
		return wellTyped(v.Child, strict)
	case *GeneratedAlias:
		return wellTyped(v.Child, strict)
	default:
		return true
	}
}
