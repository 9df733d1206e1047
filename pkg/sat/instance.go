package sat

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/samber/lo"
)

// Instance is a conjunction of clauses over variables 1..numVars, together
// with the certificates currently known to satisfy it. The clause and
// certificate lists are owned by the instance; accessors hand out copies.
type Instance struct {
	clauses        []Clause
	partialClauses []Clause
	numVars        int
	certificates   []Certificate
}

// EvaluatedInstance is the tagged result of Instance.Apply: Narrowed is
// populated only when Status is sat.Narrowed.
type EvaluatedInstance struct {
	Status   Status
	Narrowed *Instance
}

// NewInstance builds an instance from a non-empty clause set. Every
// referenced variable must lie in 1..numVars. An empty clause in the set is
// accepted: it makes the instance unsatisfiable, which is a solving outcome,
// not a construction error.
func NewInstance(clauses []Clause, numVars int) (*Instance, error) {
	if numVars <= 0 {
		return nil, fmt.Errorf("%w: variable count %d", ErrNonPositiveVariable, numVars)
	}
	if len(clauses) == 0 {
		return nil, ErrNoClauses
	}
	for _, clause := range clauses {
		for _, literal := range clause.Literals() {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable > numVars {
				return nil, fmt.Errorf("%w: variable %d, declared %d",
					ErrVariableOutOfRange, variable, numVars)
			}
		}
	}
	instance := &Instance{
		clauses:        make([]Clause, len(clauses)),
		partialClauses: make([]Clause, len(clauses)),
		numVars:        numVars,
	}
	copy(instance.clauses, clauses)
	copy(instance.partialClauses, clauses)
	return instance, nil
}

// NewInstanceFromLiterals builds an instance from raw literal lists.
func NewInstanceFromLiterals(lists [][]int, numVars int) (*Instance, error) {
	clauses := make([]Clause, 0, len(lists))
	for _, literals := range lists {
		clause, err := NewClause(literals)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return NewInstance(clauses, numVars)
}

// NumVars is the declared variable count.
func (in *Instance) NumVars() int {
	return in.numVars
}

// Clauses returns a copy of the clause list.
func (in *Instance) Clauses() []Clause {
	clauses := make([]Clause, len(in.clauses))
	copy(clauses, in.clauses)
	return clauses
}

// Certificates returns a copy of the certificate list produced by the last
// successful solve. Empty until then.
func (in *Instance) Certificates() []Certificate {
	certificates := make([]Certificate, len(in.certificates))
	copy(certificates, in.certificates)
	return certificates
}

// Size is the instance descriptor (k, m, n): maximum original clause width,
// number of distinct variables referenced, and clause count.
func (in *Instance) Size() (k, m, n int) {
	variables := map[int]bool{}
	for _, clause := range in.clauses {
		if clause.Size() > k {
			k = clause.Size()
		}
		for _, literal := range clause.Literals() {
			if literal < 0 {
				literal = -literal
			}
			variables[literal] = true
		}
	}
	return k, len(variables), len(in.clauses)
}

// Apply narrows every partial clause under the certificate. The whole
// instance is satisfied when every clause is, falsified as soon as one clause
// is, and otherwise yields a new instance carrying the narrowed clauses.
// The receiver is never mutated.
func (in *Instance) Apply(certificate Certificate) EvaluatedInstance {
	narrowed := make([]Clause, 0, len(in.partialClauses))
	for _, clause := range in.partialClauses {
		evaluation := clause.Apply(certificate)
		switch evaluation.Status {
		case Falsified:
			return EvaluatedInstance{Status: Falsified}
		case Satisfied:
			continue
		default:
			narrowed = append(narrowed, clause.Narrow(evaluation.Partial))
		}
	}
	if len(narrowed) == 0 {
		return EvaluatedInstance{Status: Satisfied}
	}
	successor := &Instance{
		clauses:        in.Clauses(),
		partialClauses: narrowed,
		numVars:        in.numVars,
	}
	return EvaluatedInstance{Status: Narrowed, Narrowed: successor}
}

// CountAssignments sums, over the certificates, the number of total
// assignments over numVars variables consistent with each one:
// 2^(numVars - assigned). Certificates whose free-variable spaces overlap are
// counted once each, so the result is a conservative upper bound on the
// number of distinct satisfying assignments, not an exact count.
func CountAssignments(certificates []Certificate, numVars int) *big.Int {
	total := big.NewInt(0)
	for _, certificate := range certificates {
		free := uint(numVars - certificate.Len())
		total.Add(total, new(big.Int).Lsh(big.NewInt(1), free))
	}
	return total
}

// CountSolutions applies CountAssignments to the certificates produced by the
// last successful solve.
func (in *Instance) CountSolutions() *big.Int {
	return CountAssignments(in.certificates, in.numVars)
}

func (in *Instance) String() string {
	rendered := lo.Map(in.partialClauses, func(clause Clause, _ int) string {
		return clause.String()
	})
	return strings.Join(rendered, "\n")
}
