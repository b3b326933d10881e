// Package dimerr defines the error taxonomy shared by the dimension, unit map,
// unit and quantity layers.
//
// Every failure is a *Error with a Code. Callers classify failures with the
// Is* helpers, which use errors.As so wrapped errors still match.
package dimerr

import (
	"errors"
	"fmt"
	"strconv"
)

// Code categorizes algebra errors.
type Code string

const (
	// CodeDimensionMismatch indicates add/sub between unequal dimensions.
	CodeDimensionMismatch Code = "DIMENSION_MISMATCH"

	// CodeIncompatibleUnits indicates two unit maps assign different unit
	// tags to the same axis.
	CodeIncompatibleUnits Code = "INCOMPATIBLE_UNITS"

	// CodeUnitMismatch indicates a conversion or comparison across unequal units.
	CodeUnitMismatch Code = "UNIT_MISMATCH"

	// CodeExponentOverflow indicates a power whose exponent does not fit in an int.
	CodeExponentOverflow Code = "EXPONENT_OVERFLOW"
)

// Error is a labeling violation detected when two values are combined.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op is the operation that failed: add, sub, mul, div, convert or equal.
	Op string

	// Message is a human-readable description.
	Message string

	// Axis names the offending axis (IncompatibleUnits only).
	Axis string

	// Left and Right render the two operands.
	Left  string
	Right string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Left != "" || e.Right != "" {
		return fmt.Sprintf("%s: %s: %s (left=%s, right=%s)", e.Code, e.Op, e.Message, e.Left, e.Right)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
}

// NewDimensionMismatch creates an Error for add/sub of unequal dimensions.
func NewDimensionMismatch(op, left, right string) *Error {
	return &Error{
		Code:    CodeDimensionMismatch,
		Op:      op,
		Message: "cannot combine different dimensions",
		Left:    left,
		Right:   right,
	}
}

// NewIncompatibleUnits creates an Error for an axis measured in two different units.
func NewIncompatibleUnits(op, axis, left, right string) *Error {
	return &Error{
		Code:    CodeIncompatibleUnits,
		Op:      op,
		Message: fmt.Sprintf("axis %s must be measured in a common unit", axis),
		Axis:    axis,
		Left:    left,
		Right:   right,
	}
}

// NewUnitMismatch creates an Error for a conversion or comparison across unequal units.
func NewUnitMismatch(op, left, right string) *Error {
	return &Error{
		Code:    CodeUnitMismatch,
		Op:      op,
		Message: "unit mismatch",
		Left:    left,
		Right:   right,
	}
}

// NewExponentOverflow creates an Error for raising operand to a power n
// whose exponents do not fit in an int.
func NewExponentOverflow(op, operand string, n int) *Error {
	return &Error{
		Code:    CodeExponentOverflow,
		Op:      op,
		Message: fmt.Sprintf("exponent overflow raising to the power %d", n),
		Left:    operand,
		Right:   strconv.Itoa(n),
	}
}

// CodeOf returns the Code of err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsDimensionMismatch returns true if err is a dimension mismatch.
func IsDimensionMismatch(err error) bool {
	return CodeOf(err) == CodeDimensionMismatch
}

// IsIncompatibleUnits returns true if err is an incompatible units error.
func IsIncompatibleUnits(err error) bool {
	return CodeOf(err) == CodeIncompatibleUnits
}

// IsUnitMismatch returns true if err is a unit mismatch.
func IsUnitMismatch(err error) bool {
	return CodeOf(err) == CodeUnitMismatch
}

// IsExponentOverflow returns true if err is an exponent overflow.
func IsExponentOverflow(err error) bool {
	return CodeOf(err) == CodeExponentOverflow
}
