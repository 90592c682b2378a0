package query

import (
	"strconv"
	"time"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindDateTime
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDateTime:
		return "datetime"
	case KindBoolean:
		return "boolean"
	default:
		return "null"
	}
}

// Value is a query literal or an attribute's materialized value. Exactly
// one payload field is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
	Bool bool
}

// Null is the null value.
var Null = Value{Kind: KindNull}

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func TimeValue(t time.Time) Value { return Value{Kind: KindDateTime, Time: t} }
func BoolValue(b bool) Value      { return Value{Kind: KindBoolean, Bool: b} }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Display renders the value for table output.
func (v Value) Display() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		if v.Num == float64(int64(v.Num)) {
			return strconv.FormatInt(int64(v.Num), 10)
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDateTime:
		return v.Time.Format("2006-01-02 15:04:05")
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// compareValues applies op to two values of settled kinds.
//
// Null is absence, not a comparable quantity: equality against null is
// true only for null = null, inequality is its negation, and ordering a
// null is a type error. Booleans admit only equality tests.
func compareValues(op CompareOp, left, right Value) (bool, error) {
	if left.IsNull() || right.IsNull() {
		switch op {
		case OpEq:
			return left.IsNull() && right.IsNull(), nil
		case OpNeq:
			return !(left.IsNull() && right.IsNull()), nil
		default:
			return false, errf(CodeTypeError, "cannot order null values with %s", op)
		}
	}

	if left.Kind != right.Kind {
		return false, errf(CodeTypeError, "cannot compare %s with %s", left.Kind, right.Kind)
	}

	switch left.Kind {
	case KindBoolean:
		switch op {
		case OpEq:
			return left.Bool == right.Bool, nil
		case OpNeq:
			return left.Bool != right.Bool, nil
		default:
			return false, errf(CodeTypeError, "cannot order boolean values with %s", op)
		}
	case KindNumber:
		return orderResult(op, compareFloats(left.Num, right.Num)), nil
	case KindDateTime:
		return orderResult(op, compareTimes(left.Time, right.Time)), nil
	case KindString:
		return orderResult(op, compareStrings(left.Str, right.Str)), nil
	default:
		return false, errf(CodeTypeError, "cannot compare %s values", left.Kind)
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func orderResult(op CompareOp, cmp int) bool {
	switch op {
	case OpEq:
		return cmp == 0
	case OpNeq:
		return cmp != 0
	case OpLt:
		return cmp < 0
	case OpLte:
		return cmp <= 0
	case OpGt:
		return cmp > 0
	default:
		return cmp >= 0
	}
}
