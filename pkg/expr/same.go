package expr

// Same reports whether a and b refer to the same logical value for the
// purposes of predicate deduplication (EliminateCommonPredicates,
// ReduceNegations): structurally equal after unwrapping aliases, and comparing
// AttributeRefs by ID alone (names are display-only and can differ across
// equivalent plans, e.g. after EliminateSubqueries clears a qualifier).
func Same(a, b Expression) bool {
	return same(unwrapAlias(a), unwrapAlias(b))
}

func unwrapAlias(e Expression) Expression {
	for {
		switch v := e.(type) {
		case *Alias:
			e = v.Child
		case *GeneratedAlias:
			e = v.Child
		default:
			return e
		}
	}
}

func same(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.Typ == bv.Typ && av.Val == bv.Val
	case Named:
		bv, ok := b.(Named)
		return ok && av.ExprID() == bv.ExprID()
	case *Cast:
		bv, ok := b.(*Cast)
		return ok && av.Target == bv.Target && same(av.Child, bv.Child)
	case *Arithmetic:
		bv, ok := b.(*Arithmetic)
		return ok && av.Op == bv.Op && same(av.Left, bv.Left) && same(av.Right, bv.Right)
	case *Comparison:
		bv, ok := b.(*Comparison)
		return ok && av.Op == bv.Op && same(av.Left, bv.Left) && same(av.Right, bv.Right)
	case *And:
		bv, ok := b.(*And)
		return ok && same(av.Left, bv.Left) && same(av.Right, bv.Right)
	case *Or:
		bv, ok := b.(*Or)
		return ok && same(av.Left, bv.Left) && same(av.Right, bv.Right)
	case *Not:
		bv, ok := b.(*Not)
		return ok && same(av.Child, bv.Child)
	case *If:
		bv, ok := b.(*If)
		return ok && same(av.Cond, bv.Cond) && same(av.Then, bv.Then) && same(av.Else, bv.Else)
	case *Coalesce:
		bv, ok := b.(*Coalesce)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !same(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *IsNull:
		bv, ok := b.(*IsNull)
		return ok && same(av.Child, bv.Child)
	case *IsNotNull:
		bv, ok := b.(*IsNotNull)
		return ok && same(av.Child, bv.Child)
	default:
		return false
	}
}
