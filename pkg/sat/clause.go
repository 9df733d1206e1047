package sat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of signed literals. The original literal list is
// immutable for the clause's lifetime; partial holds the subset not yet
// resolved under some certificate, and starts as a full copy.
type Clause struct {
	literals []int
	partial  []int
}

// Status is the outcome of evaluating a clause against a certificate.
type Status byte

const (
	// Satisfied means at least one literal resolved to True.
	Satisfied Status = iota
	// Falsified means every literal resolved to False.
	Falsified
	// Narrowed means the clause is still undecided and some literals remain.
	Narrowed
)

func (s Status) String() string {
	switch s {
	case Satisfied:
		return "SATISFIED"
	case Falsified:
		return "FALSIFIED"
	case Narrowed:
		return "NARROWED"
	default:
		panic("invalid status")
	}
}

// Evaluation is the tagged result of Clause.Apply: Partial is populated only
// when Status is Narrowed.
type Evaluation struct {
	Status  Status
	Partial []int
}

// NewClause builds a clause from a literal list. Literal 0 is rejected; an
// empty list is legal and yields the empty (unsatisfiable) clause.
func NewClause(literals []int) (Clause, error) {
	if lo.SomeBy(literals, func(literal int) bool { return literal == 0 }) {
		return Clause{}, fmt.Errorf("%w: clause %v", ErrZeroLiteral, literals)
	}
	clause := Clause{
		literals: make([]int, len(literals)),
		partial:  make([]int, len(literals)),
	}
	copy(clause.literals, literals)
	copy(clause.partial, literals)
	return clause, nil
}

// Size is the width of the original literal list.
func (c Clause) Size() int {
	return len(c.literals)
}

// Len is the width of the current partial literal list.
func (c Clause) Len() int {
	return len(c.partial)
}

// Literals returns a copy of the original literal list.
func (c Clause) Literals() []int {
	literals := make([]int, len(c.literals))
	copy(literals, c.literals)
	return literals
}

// Partial returns a copy of the unresolved literal list.
func (c Clause) Partial() []int {
	partial := make([]int, len(c.partial))
	copy(partial, c.partial)
	return partial
}

// Contains reports whether the unresolved literals reference the variable.
func (c Clause) Contains(variable int) bool {
	return lo.SomeBy(c.partial, func(literal int) bool {
		return literal == variable || literal == -variable
	})
}

// Narrow returns the successor clause: the same original literals with the
// given unresolved subset. The receiver is left untouched.
func (c Clause) Narrow(partial []int) Clause {
	narrowed := Clause{
		literals: c.literals,
		partial:  make([]int, len(partial)),
	}
	copy(narrowed.partial, partial)
	return narrowed
}

// Apply evaluates the unresolved literals against a certificate. A literal
// resolving True satisfies the whole clause; False literals are dropped;
// Unassigned literals are retained. If nothing is retained the clause is
// falsified. The clause itself is never mutated.
func (c Clause) Apply(certificate Certificate) Evaluation {
	retained := make([]int, 0, len(c.partial))
	for _, literal := range c.partial {
		switch certificate.value(literal) {
		case True:
			return Evaluation{Status: Satisfied}
		case False:
			continue
		default:
			retained = append(retained, literal)
		}
	}
	if len(retained) == 0 {
		return Evaluation{Status: Falsified}
	}
	return Evaluation{Status: Narrowed, Partial: retained}
}

// Solutions enumerates the covering set of single-literal certificates for
// this clause alone: one certificate per unresolved literal, that literal
// made true and every other variable left free. An empty clause yields no
// certificates.
func (c Clause) Solutions() []Certificate {
	return lo.Map(c.partial, func(literal int, _ int) Certificate {
		certificate := NewCertificate()
		// Partial literals are nonzero by construction.
		if err := certificate.Insert(literal); err != nil {
			panic(fmt.Sprintf("invalid literal %d in clause: %v", literal, err))
		}
		return certificate
	})
}

func (c Clause) String() string {
	rendered := lo.Map(c.partial, func(literal int, _ int) string {
		return strconv.Itoa(literal)
	})
	return strings.Join(rendered, " ")
}
