package query

import (
	"regexp"
	"strings"

	"github.com/aidanlsb/fsq/internal/dates"
	"github.com/aidanlsb/fsq/internal/fileinfo"
)

// Evaluator applies condition trees to file snapshots. It memoizes
// compiled patterns so LIKE and REGEXP clauses compile once per query
// rather than once per entry.
type Evaluator struct {
	regexps map[string]*regexp.Regexp
}

// NewEvaluator creates an evaluator with an empty pattern cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{regexps: make(map[string]*regexp.Regexp)}
}

// Evaluate reports whether the snapshot satisfies the condition. A nil
// condition matches everything.
func (e *Evaluator) Evaluate(cond Condition, fi *fileinfo.FileInfo) (bool, error) {
	if cond == nil {
		return true, nil
	}

	switch c := cond.(type) {
	case *Compare:
		left, err := attributeValue(c.Attribute, fi)
		if err != nil {
			return false, err
		}
		right, err := coerceLiteral(c.Attribute, c.Value)
		if err != nil {
			return false, err
		}
		return compareValues(c.Op, left, right)

	case *And:
		ok, err := e.Evaluate(c.Left, fi)
		if err != nil || !ok {
			return false, err
		}
		return e.Evaluate(c.Right, fi)

	case *Or:
		ok, err := e.Evaluate(c.Left, fi)
		if err != nil || ok {
			return ok, err
		}
		return e.Evaluate(c.Right, fi)

	case *Not:
		ok, err := e.Evaluate(c.Inner, fi)
		if err != nil {
			return false, err
		}
		return !ok, nil

	case *Like:
		re, err := e.compile(likePattern(c.Pattern, c.CaseSensitive))
		if err != nil {
			return false, errf(CodeInvalidRegex, "invalid LIKE pattern %q: %v", c.Pattern, err)
		}
		return e.matchString(c.Attribute, fi, re)

	case *Between:
		lower, err := e.Evaluate(&Compare{Attribute: c.Attribute, Op: OpGte, Value: c.Lower}, fi)
		if err != nil || !lower {
			return false, err
		}
		return e.Evaluate(&Compare{Attribute: c.Attribute, Op: OpLte, Value: c.Upper}, fi)

	case *Regexp:
		re, err := e.compile(c.Pattern)
		if err != nil {
			return false, errf(CodeInvalidRegex, "invalid regular expression %q: %v", c.Pattern, err)
		}
		return e.matchString(c.Attribute, fi, re)

	default:
		return false, errf(CodeUnsupportedFeature, "unsupported condition %T", cond)
	}
}

func (e *Evaluator) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := e.regexps[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	e.regexps[pattern] = re
	return re, nil
}

// matchString matches a pattern against a string attribute. A null
// attribute value never matches.
func (e *Evaluator) matchString(attr Attribute, fi *fileinfo.FileInfo, re *regexp.Regexp) (bool, error) {
	v, err := attributeValue(attr, fi)
	if err != nil {
		return false, err
	}
	if v.IsNull() {
		return false, nil
	}
	if v.Kind != KindString {
		return false, errf(CodeTypeError, "pattern match requires a string attribute, %s is %s", attr, v.Kind)
	}
	return re.MatchString(v.Str), nil
}

// likePattern translates a SQL LIKE pattern into an anchored regular
// expression: % matches any run, _ matches one character, everything
// else is literal.
func likePattern(pattern string, caseSensitive bool) string {
	var sb strings.Builder
	if !caseSensitive {
		sb.WriteString("(?i)")
	}
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// coerceLiteral settles a literal's kind against the attribute it is
// compared with: string literals against temporal attributes parse as
// dates, datetimes or relative day names at evaluation time.
func coerceLiteral(attr Attribute, v Value) (Value, error) {
	if attr.IsTemporal() && v.Kind == KindString {
		t, err := dates.ParseTemporal(v.Str)
		if err != nil {
			return Null, errf(CodeInvalidValue, "invalid date or datetime %q", v.Str)
		}
		return TimeValue(t), nil
	}
	return v, nil
}

// attributeValue materializes one attribute of a snapshot as a Value.
// Attributes the platform could not populate come back null.
func attributeValue(attr Attribute, fi *fileinfo.FileInfo) (Value, error) {
	switch attr {
	case AttrName:
		return StringValue(fi.Name), nil
	case AttrPath:
		return StringValue(fi.Path), nil
	case AttrSize:
		return NumberValue(float64(fi.Size)), nil
	case AttrExtension:
		if fi.Extension == "" {
			return Null, nil
		}
		return StringValue(fi.Extension), nil
	case AttrModified:
		return TimeValue(fi.Modified), nil
	case AttrCreated:
		if fi.Created == nil {
			return Null, nil
		}
		return TimeValue(*fi.Created), nil
	case AttrAccessed:
		if fi.Accessed == nil {
			return Null, nil
		}
		return TimeValue(*fi.Accessed), nil
	case AttrPermissions:
		return NumberValue(float64(fi.Permissions)), nil
	case AttrOwner:
		if fi.Owner == "" {
			return Null, nil
		}
		return StringValue(fi.Owner), nil
	case AttrIsDirectory:
		return BoolValue(fi.IsDir), nil
	case AttrIsSymlink:
		return BoolValue(fi.IsSymlink), nil
	case AttrIsExecutable:
		return BoolValue(fi.IsExecutable()), nil
	default:
		return Null, errf(CodeUnsupportedAttribute, "cannot evaluate attribute %s", attr)
	}
}
