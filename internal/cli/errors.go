// Package cli implements the command-line interface.
package cli

import (
	"github.com/aidanlsb/fsq/internal/query"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Query errors
	ErrQueryInvalid         = "QUERY_INVALID"
	ErrPathInvalid          = "PATH_INVALID"
	ErrTypeError            = "TYPE_ERROR"
	ErrRegexInvalid         = "REGEX_INVALID"
	ErrUnsupportedOperation = "UNSUPPORTED_OPERATION"
	ErrUnsupportedAttribute = "UNSUPPORTED_ATTRIBUTE"
	ErrExecutionFailed      = "EXECUTION_FAILED"

	// Saved query errors
	ErrQueryNotFound = "QUERY_NOT_FOUND"
	ErrDuplicateName = "DUPLICATE_NAME"

	// Config / state errors
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrHistoryError  = "HISTORY_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// queryErrorCode maps a query engine failure to its stable CLI code.
func queryErrorCode(err error) string {
	switch query.CodeOf(err) {
	case query.CodeUnsupportedStatement, query.CodeMissingClause,
		query.CodeInvalidAttribute, query.CodeInvalidOperator,
		query.CodeInvalidValue, query.CodeUnsupportedFeature:
		return ErrQueryInvalid
	case query.CodeInvalidPath:
		return ErrPathInvalid
	case query.CodeTypeError:
		return ErrTypeError
	case query.CodeInvalidRegex:
		return ErrRegexInvalid
	case query.CodeUnsupportedOperation:
		return ErrUnsupportedOperation
	case query.CodeUnsupportedAttribute:
		return ErrUnsupportedAttribute
	default:
		return ErrExecutionFailed
	}
}
