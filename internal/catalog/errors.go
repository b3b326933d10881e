package catalog

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Definition error codes (E200-E299)
const (
	ErrDecode          = "E200" // malformed YAML or CUE
	ErrDuplicateName   = "E201" // axis or unit declared twice
	ErrUnknownAxis     = "E202" // base unit references an undeclared axis
	ErrUnknownUnit     = "E203" // derived unit references an undeclared unit
	ErrZeroExponent    = "E204" // derived factor with exponent 0
	ErrEmptyName       = "E205" // missing name
	ErrBadDerivation   = "E206" // unit algebra rejected a derived unit
	ErrInvalidBinding  = "E207" // pre-bound tag has the wrong kind
	ErrUnsupportedFile = "E208" // unknown definition file extension
)

// DefinitionError reports an invalid unit-system definition.
type DefinitionError struct {
	Code    string
	Field   string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	if e.Pos.IsValid() {
		msg = fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *DefinitionError) Unwrap() error { return e.Err }

func defErr(code, field, format string, args ...any) *DefinitionError {
	return &DefinitionError{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &DefinitionError{Code: ErrDecode, Field: "cue", Message: err.Error()}
	}
	first := errs[0]
	de := &DefinitionError{Code: ErrDecode, Field: "cue", Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		de.Pos = positions[0]
	}
	return de
}
