package sat

import "errors"

// Precondition violations and conflicts are programmer errors surfaced as
// distinct sentinels so callers can tell them apart from format errors.
// Unsatisfiability is never reported through an error.
var (
	// ErrZeroLiteral is returned when a literal with value 0 is used; the
	// DIMACS clause terminator is not a literal.
	ErrZeroLiteral = errors.New("literal must be nonzero")

	// ErrNonPositiveVariable is returned when a variable index is not a
	// positive integer.
	ErrNonPositiveVariable = errors.New("positive variable required")

	// ErrConflictingAssignment is returned when a certificate insertion
	// contradicts a value already recorded for the same variable.
	ErrConflictingAssignment = errors.New("conflicting assignment")

	// ErrNoClauses is returned when an instance is built from an empty
	// clause set.
	ErrNoClauses = errors.New("instance requires at least one clause")

	// ErrVariableOutOfRange is returned when a clause references a variable
	// above the instance's declared variable count.
	ErrVariableOutOfRange = errors.New("variable exceeds declared variable count")
)
