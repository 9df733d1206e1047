package sat

// Solver decides satisfiability of an instance. A nil or empty certificate
// list with a nil error means the instance is unsatisfiable (both are valid
// outputs, not faults). A non-empty list is a covering set: every satisfying
// assignment is consistent with at least one returned certificate.
type Solver interface {
	Solve(*Instance) ([]Certificate, error)
}
