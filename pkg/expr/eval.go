package expr

import "fmt"

// Evaluate computes the constant value of e, which must be IsFoldable (no
// AttributeRef reachable from e). FoldConstants uses this to collapse a
// foldable subtree into a Literal. Evaluate never consults any row/schema
// context; that is what IsFoldable exists to rule out.
func Evaluate(e Expression) (interface{}, DataType, error) {
	if !e.IsFoldable() {
		return nil, Unknown, fmt.Errorf("expr: Evaluate called on non-foldable %T", e)
	}
	switch v := e.(type) {
	case *Literal:
		return v.Val, v.Typ, nil

	case *Cast:
		val, _, err := Evaluate(v.Child)
		if err != nil {
			return nil, Unknown, err
		}
		return castValue(val, v.Target)

	case *Arithmetic:
		return evalArithmetic(v)

	case *Comparison:
		return evalComparison(v)

	case *And:
		l, _, err := Evaluate(v.Left)
		if err != nil {
			return nil, Unknown, err
		}
		if l != nil && !l.(bool) {
			return false, Bool, nil
		}
		r, _, err := Evaluate(v.Right)
		if err != nil {
			return nil, Unknown, err
		}
		if r != nil && !r.(bool) {
			return false, Bool, nil
		}
		if l == nil || r == nil {
			return nil, Bool, nil
		}
		return true, Bool, nil

	case *Or:
		l, _, err := Evaluate(v.Left)
		if err != nil {
			return nil, Unknown, err
		}
		if l != nil && l.(bool) {
			return true, Bool, nil
		}
		r, _, err := Evaluate(v.Right)
		if err != nil {
			return nil, Unknown, err
		}
		if r != nil && r.(bool) {
			return true, Bool, nil
		}
		if l == nil || r == nil {
			return nil, Bool, nil
		}
		return false, Bool, nil

	case *Not:
		c, _, err := Evaluate(v.Child)
		if err != nil {
			return nil, Unknown, err
		}
		if c == nil {
			return nil, Bool, nil
		}
		return !c.(bool), Bool, nil

	case *If:
		c, _, err := Evaluate(v.Cond)
		if err != nil {
			return nil, Unknown, err
		}
		if c != nil && c.(bool) {
			return Evaluate(v.Then)
		}
		return Evaluate(v.Else)

	case *Coalesce:
		for _, a := range v.Args {
			val, typ, err := Evaluate(a)
			if err != nil {
				return nil, Unknown, err
			}
			if val != nil {
				return val, typ, nil
			}
		}
		return nil, v.DataType(), nil

	case *IsNull:
		c, _, err := Evaluate(v.Child)
		if err != nil {
			return nil, Unknown, err
		}
		return c == nil, Bool, nil

	case *IsNotNull:
		c, _, err := Evaluate(v.Child)
		if err != nil {
			return nil, Unknown, err
		}
		return c != nil, Bool, nil

	default:
		return nil, Unknown, fmt.Errorf("expr: Evaluate: unsupported foldable type %T", e)
	}
}

func castValue(val interface{}, target DataType) (interface{}, DataType, error) {
	if val == nil {
		return nil, target, nil
	}
	switch target {
	case Int64:
		switch v := val.(type) {
		case int64:
			return v, Int64, nil
		case float64:
			return int64(v), Int64, nil
		}
	case Float64:
		switch v := val.(type) {
		case int64:
			return float64(v), Float64, nil
		case float64:
			return v, Float64, nil
		}
	case String:
		return fmt.Sprintf("%v", val), String, nil
	case Bool:
		if v, ok := val.(bool); ok {
			return v, Bool, nil
		}
	}
	return nil, Unknown, fmt.Errorf("expr: cannot cast %T to %s", val, target)
}

func evalArithmetic(a *Arithmetic) (interface{}, DataType, error) {
	lv, _, err := Evaluate(a.Left)
	if err != nil {
		return nil, Unknown, err
	}
	rv, _, err := Evaluate(a.Right)
	if err != nil {
		return nil, Unknown, err
	}
	typ := a.DataType()
	if lv == nil || rv == nil {
		return nil, typ, nil
	}
	lf, rf := toFloat(lv), toFloat(rv)
	var result float64
	switch a.Op {
	case Add:
		result = lf + rf
	case Sub:
		result = lf - rf
	case Mul:
		result = lf * rf
	case Div:
		if rf == 0 {
			return nil, typ, nil
		}
		result = lf / rf
	case Mod:
		if rf == 0 {
			return nil, typ, nil
		}
		result = float64(int64(lf) % int64(rf))
	}
	if typ == Float64 {
		return result, Float64, nil
	}
	return int64(result), Int64, nil
}

func evalComparison(c *Comparison) (interface{}, DataType, error) {
	lv, _, err := Evaluate(c.Left)
	if err != nil {
		return nil, Unknown, err
	}
	rv, _, err := Evaluate(c.Right)
	if err != nil {
		return nil, Unknown, err
	}
	if lv == nil || rv == nil {
		return nil, Bool, nil
	}
	var cmp int
	if c.Left.DataType().numeric() || c.Right.DataType().numeric() {
		lf, rf := toFloat(lv), toFloat(rv)
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		}
	} else {
		ls, rs := fmt.Sprintf("%v", lv), fmt.Sprintf("%v", rv)
		switch {
		case ls < rs:
			cmp = -1
		case ls > rs:
			cmp = 1
		}
	}
	var result bool
	switch c.Op {
	case Eq:
		result = cmp == 0
	case Ne:
		result = cmp != 0
	case Lt:
		result = cmp < 0
	case Le:
		result = cmp <= 0
	case Gt:
		result = cmp > 0
	case Ge:
		result = cmp >= 0
	}
	return result, Bool, nil
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
