// Package query implements the fsq file query language: a SQL-flavored
// dialect for selecting filesystem entries and updating their attributes.
package query

// Attribute identifies a queryable property of a filesystem entry.
type Attribute int

const (
	AttrAll Attribute = iota
	AttrName
	AttrPath
	AttrSize
	AttrExtension
	AttrModified
	AttrCreated
	AttrAccessed
	AttrPermissions
	AttrOwner
	AttrIsDirectory
	AttrIsSymlink
	AttrIsExecutable
)

var attributeNames = map[string]Attribute{
	"*":             AttrAll,
	"name":          AttrName,
	"path":          AttrPath,
	"size":          AttrSize,
	"extension":     AttrExtension,
	"modified":      AttrModified,
	"created":       AttrCreated,
	"accessed":      AttrAccessed,
	"permissions":   AttrPermissions,
	"owner":         AttrOwner,
	"is_directory":  AttrIsDirectory,
	"is_symlink":    AttrIsSymlink,
	"is_executable": AttrIsExecutable,
}

func (a Attribute) String() string {
	for name, attr := range attributeNames {
		if attr == a {
			return name
		}
	}
	return "unknown"
}

// ParseAttribute resolves an attribute name as it appears in query text.
// Matching is case-insensitive.
func ParseAttribute(name string) (Attribute, bool) {
	attr, ok := attributeNames[lowerASCII(name)]
	return attr, ok
}

// IsTemporal reports whether the attribute carries a timestamp value.
func (a Attribute) IsTemporal() bool {
	return a == AttrModified || a == AttrCreated || a == AttrAccessed
}

// CompareOp is a comparison operator in a condition.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

func (op CompareOp) String() string {
	switch op {
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	default:
		return "="
	}
}

// Statement is a parsed top-level query: Select or Update.
type Statement interface {
	statementNode()
}

// Select lists entries under Path, optionally filtered by Where.
type Select struct {
	Path       string
	Recursive  bool
	Attributes []Attribute // projection; AttrAll means every column
	Where      Condition   // nil when no WHERE clause
}

func (*Select) statementNode() {}

// Update applies attribute changes to entries under Path that match Where.
type Update struct {
	Path    string
	Updates []AttributeUpdate
	Where   Condition // nil when no WHERE clause
}

func (*Update) statementNode() {}

// AttributeUpdate is a single SET assignment. The value is kept as the raw
// literal text; the executor interprets it per attribute (e.g. octal for
// permissions).
type AttributeUpdate struct {
	Attribute Attribute
	Value     string
}

// Condition is a node in a predicate tree. Trees are finite and acyclic:
// each combinator owns its operand subtrees.
type Condition interface {
	conditionNode()
}

// Compare tests one attribute against a literal value.
type Compare struct {
	Attribute Attribute
	Op        CompareOp
	Value     Value
}

func (*Compare) conditionNode() {}

// And is the conjunction of two conditions.
type And struct {
	Left, Right Condition
}

func (*And) conditionNode() {}

// Or is the disjunction of two conditions.
type Or struct {
	Left, Right Condition
}

func (*Or) conditionNode() {}

// Not inverts its inner condition.
type Not struct {
	Inner Condition
}

func (*Not) conditionNode() {}

// Like is a SQL LIKE pattern match: % matches any run of characters,
// _ matches exactly one. The whole attribute value must match.
type Like struct {
	Attribute     Attribute
	Pattern       string
	CaseSensitive bool
}

func (*Like) conditionNode() {}

// Between tests lower <= attribute <= upper, inclusive on both bounds.
type Between struct {
	Attribute    Attribute
	Lower, Upper Value
}

func (*Between) conditionNode() {}

// Regexp tests an attribute against an unanchored regular expression.
type Regexp struct {
	Attribute Attribute
	Pattern   string
}

func (*Regexp) conditionNode() {}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
