package query

import (
	"errors"
	"fmt"
)

// Code classifies a query engine failure. Codes are specific and
// non-overlapping: every rejection path maps to exactly one.
type Code string

const (
	// Parse-time codes.
	CodeUnsupportedStatement Code = "unsupported statement"
	CodeMissingClause        Code = "missing clause"
	CodeInvalidPath          Code = "invalid path"
	CodeInvalidAttribute     Code = "invalid attribute"
	CodeInvalidOperator      Code = "invalid operator"
	CodeInvalidValue         Code = "invalid value"
	CodeUnsupportedFeature   Code = "unsupported feature"

	// Evaluation-time codes.
	CodeTypeError            Code = "type error"
	CodeUnsupportedAttribute Code = "unsupported attribute"
	CodeInvalidRegex         Code = "invalid regex"

	// Execution-time codes.
	CodeUnsupportedOperation Code = "unsupported operation"
)

// Error is a typed query engine error. Plain I/O failures from traversal
// are returned as wrapped os errors instead, so callers can errors.Is
// against fs sentinels.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err, or "" if err is not a query error.
func CodeOf(err error) Code {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}
