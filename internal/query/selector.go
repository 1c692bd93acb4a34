// Package query implements the selector predicates the document store and
// change feed evaluate against documents: equality, not-equal and range
// comparisons over arbitrary fields, combined with AND semantics.
package query

// Op is a comparison operator.
type Op int

const (
	OpEq Op = iota
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
)

// Condition compares one document field against a literal value.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Selector is a conjunction of conditions. The empty selector matches every
// document.
type Selector []Condition

// Eq matches documents whose field equals v.
func Eq(field string, v any) Condition { return Condition{Field: field, Op: OpEq, Value: v} }

// Ne matches documents whose field differs from v. A document without the
// field matches, since its (absent) value is not v.
func Ne(field string, v any) Condition { return Condition{Field: field, Op: OpNe, Value: v} }

// Gt matches documents whose field is strictly greater than v.
func Gt(field string, v any) Condition { return Condition{Field: field, Op: OpGt, Value: v} }

// Gte matches documents whose field is greater than or equal to v.
func Gte(field string, v any) Condition { return Condition{Field: field, Op: OpGte, Value: v} }

// Lt matches documents whose field is strictly less than v.
func Lt(field string, v any) Condition { return Condition{Field: field, Op: OpLt, Value: v} }

// Lte matches documents whose field is less than or equal to v.
func Lte(field string, v any) Condition { return Condition{Field: field, Op: OpLte, Value: v} }

// Where builds a selector from conditions.
func Where(conds ...Condition) Selector { return Selector(conds) }

// All returns the selector matching every document.
func All() Selector { return nil }

// Matches reports whether every condition holds for the document.
func (s Selector) Matches(doc map[string]any) bool {
	for _, c := range s {
		if !c.matches(doc) {
			return false
		}
	}
	return true
}

func (c Condition) matches(doc map[string]any) bool {
	v, ok := doc[c.Field]
	if !ok {
		// Only not-equal can hold for an absent field.
		return c.Op == OpNe
	}

	cmp, comparable := compare(v, c.Value)
	switch c.Op {
	case OpEq:
		return comparable && cmp == 0
	case OpNe:
		return !comparable || cmp != 0
	case OpGt:
		return comparable && cmp > 0
	case OpGte:
		return comparable && cmp >= 0
	case OpLt:
		return comparable && cmp < 0
	case OpLte:
		return comparable && cmp <= 0
	default:
		return false
	}
}

// compare orders two JSON scalar values. Numbers compare numerically across
// Go numeric types (JSON decodes to float64, literals in code are often
// int), strings lexicographically, which covers RFC 3339 date ranges, and
// booleans support equality only.
func compare(a, b any) (int, bool) {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			switch {
			case as < bs:
				return -1, true
			case as > bs:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			if ab == bb {
				return 0, true
			}
			return 1, true
		}
		return 0, false
	}

	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
