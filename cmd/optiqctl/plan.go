package main

import (
	"encoding/json"
	"fmt"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// planDoc is the on-disk JSON shape cmd/optiqctl reads a fixture plan from.
// It exists only at this CLI boundary: the optimizer library itself has no
// wire format, per its no-I/O design.
type planDoc struct {
	Node       string          `json:"node"`
	Name       string          `json:"name,omitempty"`
	Alias      string          `json:"alias,omitempty"`
	Columns    []columnDoc     `json:"columns,omitempty"`
	Exprs      []json.RawMessage `json:"exprs,omitempty"`
	Condition  json.RawMessage `json:"condition,omitempty"`
	JoinType   string          `json:"join_type,omitempty"`
	Count      int64           `json:"count,omitempty"`
	Offset     int64           `json:"offset,omitempty"`
	Child      *planDoc        `json:"child,omitempty"`
	Left       *planDoc        `json:"left,omitempty"`
	Right      *planDoc        `json:"right,omitempty"`
	Branches   []*planDoc      `json:"branches,omitempty"`
}

type columnDoc struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

type exprDoc struct {
	Node     string          `json:"node"`
	ID       uint64          `json:"id,omitempty"`
	Name     string          `json:"name,omitempty"`
	Type     string          `json:"type,omitempty"`
	Nullable bool            `json:"nullable,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
	Op       string          `json:"op,omitempty"`
	Left     json.RawMessage `json:"left,omitempty"`
	Right    json.RawMessage `json:"right,omitempty"`
	Child    json.RawMessage `json:"child,omitempty"`
	Then     json.RawMessage `json:"then,omitempty"`
	Else     json.RawMessage `json:"else,omitempty"`
	Args     []json.RawMessage `json:"args,omitempty"`
	Target   string          `json:"target,omitempty"`
}

func parseDataType(s string) (expr.DataType, error) {
	switch s {
	case "bool":
		return expr.Bool, nil
	case "int64":
		return expr.Int64, nil
	case "float64":
		return expr.Float64, nil
	case "string":
		return expr.String, nil
	case "unknown", "":
		return expr.Unknown, nil
	default:
		return expr.Unknown, fmt.Errorf("optiqctl: unknown data type %q", s)
	}
}

func decodeExpr(raw json.RawMessage) (expr.Expression, error) {
	var d exprDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("optiqctl: decoding expression: %w", err)
	}

	typ, err := parseDataType(d.Type)
	if err != nil {
		return nil, err
	}

	switch d.Node {
	case "literal":
		var v interface{}
		if len(d.Value) > 0 {
			if err := json.Unmarshal(d.Value, &v); err != nil {
				return nil, fmt.Errorf("optiqctl: decoding literal value: %w", err)
			}
		}
		return expr.NewLiteral(v, typ), nil

	case "attr":
		return expr.NewAttributeRef(expr.ID(d.ID), d.Name, typ, d.Nullable), nil

	case "alias":
		child, err := decodeExpr(d.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewAlias(expr.ID(d.ID), d.Name, child), nil

	case "cast":
		child, err := decodeExpr(d.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewCast(child, typ), nil

	case "arithmetic":
		left, err := decodeExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(d.Right)
		if err != nil {
			return nil, err
		}
		op, err := parseArithOp(d.Op)
		if err != nil {
			return nil, err
		}
		return expr.NewArithmetic(op, left, right), nil

	case "comparison":
		left, err := decodeExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(d.Right)
		if err != nil {
			return nil, err
		}
		op, err := parseCompareOp(d.Op)
		if err != nil {
			return nil, err
		}
		return expr.NewComparison(op, left, right), nil

	case "and":
		left, err := decodeExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(d.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewAnd(left, right), nil

	case "or":
		left, err := decodeExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(d.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewOr(left, right), nil

	case "not":
		child, err := decodeExpr(d.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewNot(child), nil

	case "if":
		cond, err := decodeExpr(d.Left)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(d.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(d.Else)
		if err != nil {
			return nil, err
		}
		return expr.NewIf(cond, then, els), nil

	case "coalesce":
		args := make([]expr.Expression, len(d.Args))
		for i, a := range d.Args {
			ae, err := decodeExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return expr.NewCoalesce(args...), nil

	case "is_null":
		child, err := decodeExpr(d.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewIsNull(child), nil

	case "is_not_null":
		child, err := decodeExpr(d.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewIsNotNull(child), nil

	default:
		return nil, fmt.Errorf("optiqctl: unknown expression node %q", d.Node)
	}
}

func parseArithOp(s string) (expr.ArithOp, error) {
	switch s {
	case "+":
		return expr.Add, nil
	case "-":
		return expr.Sub, nil
	case "*":
		return expr.Mul, nil
	case "/":
		return expr.Div, nil
	case "%":
		return expr.Mod, nil
	default:
		return 0, fmt.Errorf("optiqctl: unknown arithmetic operator %q", s)
	}
}

func parseCompareOp(s string) (expr.CompareOp, error) {
	switch s {
	case "=":
		return expr.Eq, nil
	case "!=", "<>":
		return expr.Ne, nil
	case "<":
		return expr.Lt, nil
	case "<=":
		return expr.Le, nil
	case ">":
		return expr.Gt, nil
	case ">=":
		return expr.Ge, nil
	default:
		return 0, fmt.Errorf("optiqctl: unknown comparison operator %q", s)
	}
}

func parseJoinType(s string) (plan.JoinType, error) {
	switch s {
	case "inner":
		return plan.InnerJoin, nil
	case "left":
		return plan.LeftOuterJoin, nil
	case "right":
		return plan.RightOuterJoin, nil
	case "full":
		return plan.FullOuterJoin, nil
	default:
		return 0, fmt.Errorf("optiqctl: unknown join type %q", s)
	}
}

func decodePlan(d *planDoc) (plan.LogicalPlan, error) {
	switch d.Node {
	case "relation":
		attrs := make([]*expr.AttributeRef, len(d.Columns))
		for i, c := range d.Columns {
			typ, err := parseDataType(c.Type)
			if err != nil {
				return nil, err
			}
			attrs[i] = expr.NewAttributeRef(expr.ID(c.ID), c.Name, typ, c.Nullable)
		}
		return plan.NewLocalRelation(d.Name, attrs...), nil

	case "unresolved":
		return &plan.UnresolvedRelation{Name: d.Name}, nil

	case "filter":
		child, err := decodePlan(d.Child)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(d.Condition)
		if err != nil {
			return nil, err
		}
		return plan.NewFilter(child, cond), nil

	case "project":
		child, err := decodePlan(d.Child)
		if err != nil {
			return nil, err
		}
		exprs := make([]expr.Named, len(d.Exprs))
		for i, raw := range d.Exprs {
			e, err := decodeExpr(raw)
			if err != nil {
				return nil, err
			}
			named, ok := e.(expr.Named)
			if !ok {
				return nil, fmt.Errorf("optiqctl: project expression %d does not carry a stable identity", i)
			}
			exprs[i] = named
		}
		return plan.NewProject(child, exprs...), nil

	case "join":
		left, err := decodePlan(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodePlan(d.Right)
		if err != nil {
			return nil, err
		}
		jt, err := parseJoinType(d.JoinType)
		if err != nil {
			return nil, err
		}
		var cond expr.Expression
		if len(d.Condition) > 0 {
			cond, err = decodeExpr(d.Condition)
			if err != nil {
				return nil, err
			}
		}
		return plan.NewJoin(jt, left, right, cond), nil

	case "limit":
		child, err := decodePlan(d.Child)
		if err != nil {
			return nil, err
		}
		return plan.NewLimit(child, d.Count, d.Offset), nil

	case "union":
		branches := make([]plan.LogicalPlan, len(d.Branches))
		for i, b := range d.Branches {
			bp, err := decodePlan(b)
			if err != nil {
				return nil, err
			}
			branches[i] = bp
		}
		return plan.NewUnion(branches...), nil

	case "subquery":
		child, err := decodePlan(d.Child)
		if err != nil {
			return nil, err
		}
		return plan.NewSubquery(d.Alias, child), nil

	default:
		return nil, fmt.Errorf("optiqctl: unknown plan node %q", d.Node)
	}
}

// DecodePlanJSON parses a JSON-encoded fixture plan in the shape described
// by planDoc and exprDoc.
func DecodePlanJSON(data []byte) (plan.LogicalPlan, error) {
	var d planDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("optiqctl: decoding plan: %w", err)
	}
	return decodePlan(&d)
}
