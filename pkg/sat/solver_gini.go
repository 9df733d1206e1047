package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns a solver backed by the gini CDCL engine. It reports
// at most one certificate: a total assignment when the instance is
// satisfiable. Used as a reference verdict against the merge solver.
func NewGiniSolver() Solver {
	return giniSolver{}
}

func (giniSolver) Solve(instance *Instance) ([]Certificate, error) {
	engine := gini.New()
	for _, clause := range instance.Clauses() {
		for _, literal := range clause.Literals() {
			if literal < 0 {
				engine.Add(z.Var(-literal).Neg())
			} else {
				engine.Add(z.Var(literal).Pos())
			}
		}
		engine.Add(z.LitNull)
	}
	if engine.Solve() != 1 {
		return nil, nil
	}

	certificate := NewCertificate()
	for variable := 1; variable <= instance.NumVars(); variable++ {
		assignment := Lift(engine.Value(z.Var(variable).Pos()))
		if err := certificate.InsertPair(variable, assignment); err != nil {
			return nil, err
		}
	}
	return []Certificate{certificate}, nil
}
