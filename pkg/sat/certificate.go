package sat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Certificate is a partial assignment: a mapping from variable to Assignment.
// Unassigned is the implicit value of every absent variable and is never
// stored. Certificates grow monotonically: a variable's value can be
// confirmed but never changed or removed once set.
type Certificate struct {
	assignments map[int]Assignment
}

// NewCertificate returns an empty certificate.
func NewCertificate() Certificate {
	return Certificate{assignments: map[int]Assignment{}}
}

// CertificateFromAssignments builds a certificate from a starting mapping.
// The mapping is copied; Unassigned entries are dropped.
func CertificateFromAssignments(assignments map[int]Assignment) (Certificate, error) {
	cert := NewCertificate()
	for variable, assignment := range assignments {
		if err := cert.InsertPair(variable, assignment); err != nil {
			return Certificate{}, err
		}
	}
	return cert, nil
}

// Len reports the number of assigned variables.
func (c Certificate) Len() int {
	return len(c.assignments)
}

// Variables returns the assigned variables in ascending order.
func (c Certificate) Variables() []int {
	variables := lo.Keys(c.assignments)
	slices.Sort(variables)
	return variables
}

// InsertPair records an assignment for a variable. Inserting Unassigned is a
// no-op, as is re-inserting the value a variable already holds. Inserting a
// different value for an already-assigned variable fails with
// ErrConflictingAssignment.
func (c Certificate) InsertPair(variable int, assignment Assignment) error {
	if variable <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveVariable, variable)
	}
	if assignment == Unassigned {
		return nil
	}
	if old, ok := c.assignments[variable]; ok {
		if old != assignment {
			return fmt.Errorf("%w: variable %d holds %v, tried to insert %v",
				ErrConflictingAssignment, variable, old, assignment)
		}
		return nil
	}
	c.assignments[variable] = assignment
	return nil
}

// Insert records the assignment implied by a signed literal: the literal's
// variable set to True for a positive literal, False for a negative one.
func (c Certificate) Insert(literal int) error {
	if literal == 0 {
		return ErrZeroLiteral
	}
	variable := literal
	if variable < 0 {
		variable = -variable
	}
	return c.InsertPair(variable, Lift(literal > 0))
}

// Get resolves a signed literal against the certificate: Unassigned if the
// literal's variable is absent, otherwise the stored assignment, inverted
// when the literal is negative.
func (c Certificate) Get(literal int) (Assignment, error) {
	if literal == 0 {
		return Unassigned, ErrZeroLiteral
	}
	variable := literal
	if variable < 0 {
		variable = -variable
	}
	assignment := c.assignments[variable]
	if literal < 0 {
		return assignment.Inverse(), nil
	}
	return assignment, nil
}

// value resolves a literal known to be nonzero (a clause invariant).
func (c Certificate) value(literal int) Assignment {
	assignment, _ := c.Get(literal)
	return assignment
}

// IsCompatible reports whether the two certificates agree on every variable
// they both assign. Variables assigned by only one side never conflict.
func (c Certificate) IsCompatible(other Certificate) bool {
	// Probe the smaller domain against the larger one.
	small, large := c, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for variable, assignment := range small.assignments {
		if otherAssignment, ok := large.assignments[variable]; ok && otherAssignment != assignment {
			return false
		}
	}
	return true
}

// Merge returns a new certificate holding the union of both mappings, leaving
// both inputs untouched. The second return value is false when the
// certificates are incompatible: an expected outcome, not a fault.
func (c Certificate) Merge(other Certificate) (Certificate, bool) {
	if !c.IsCompatible(other) {
		return Certificate{}, false
	}
	merged := NewCertificate()
	for variable, assignment := range c.assignments {
		merged.assignments[variable] = assignment
	}
	for variable, assignment := range other.assignments {
		merged.assignments[variable] = assignment
	}
	return merged, true
}

// Equal reports whether both certificates hold identical mappings.
func (c Certificate) Equal(other Certificate) bool {
	if c.Len() != other.Len() {
		return false
	}
	return lo.EveryBy(c.Variables(), func(variable int) bool {
		return c.assignments[variable] == other.assignments[variable]
	})
}

// Key returns a canonical signed-literal rendering of the certificate,
// identical for equal certificates, usable as a set-membership key.
func (c Certificate) Key() string {
	literals := lo.Map(c.Variables(), func(variable int, _ int) string {
		if c.assignments[variable] == False {
			return fmt.Sprintf("%d", -variable)
		}
		return fmt.Sprintf("%d", variable)
	})
	return strings.Join(literals, " ")
}

func (c Certificate) String() string {
	return "{" + c.Key() + "}"
}
