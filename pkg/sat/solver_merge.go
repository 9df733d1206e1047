package sat

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// DefaultBatchCeiling bounds the certificate count of a fold accumulator
// before a new one is started. A tuning knob, not an algorithmic necessity.
const DefaultBatchCeiling = 10000

type mergeSolver struct {
	ceiling int
	logger  *logrus.Logger
}

// MergeOption configures a merge solver.
type MergeOption func(*mergeSolver)

// WithBatchCeiling overrides the accumulator certificate-count ceiling.
func WithBatchCeiling(ceiling int) MergeOption {
	return func(solver *mergeSolver) {
		if ceiling > 0 {
			solver.ceiling = ceiling
		}
	}
}

// WithLogger overrides the solver's progress logger.
func WithLogger(logger *logrus.Logger) MergeOption {
	return func(solver *mergeSolver) {
		if logger != nil {
			solver.logger = logger
		}
	}
}

// NewMergeSolver returns the merge-reduction solver: one leaf sub-instance
// per clause, growth-bounded sequential folding, then tournament reduction
// down to a single certificate set covering the whole instance.
func NewMergeSolver(opts ...MergeOption) Solver {
	solver := &mergeSolver{
		ceiling: DefaultBatchCeiling,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(solver)
	}
	return solver
}

func (solver *mergeSolver) Solve(instance *Instance) ([]Certificate, error) {
	//** Leaf creation: one singleton sub-instance per clause
	leaves := make([]*Instance, 0, len(instance.clauses))
	for _, clause := range instance.clauses {
		leaf := &Instance{
			clauses:        []Clause{clause},
			partialClauses: []Clause{clause},
			numVars:        instance.numVars,
			certificates:   clause.Solutions(),
		}
		if len(leaf.certificates) == 0 {
			// Empty clause: nothing satisfies it.
			solver.logger.WithField("clause", clause.String()).Debug("empty clause, instance unsatisfiable")
			instance.certificates = nil
			return nil, nil
		}
		leaves = append(leaves, leaf)
	}

	//** Growth-bounded batching: fold leaves into accumulators sequentially,
	// sealing an accumulator whenever the predicted cross-product size would
	// exceed the ceiling.
	batches := make([]*Instance, 0, len(leaves))
	accumulator := leaves[0]
	for _, leaf := range leaves[1:] {
		if len(accumulator.certificates)*len(leaf.certificates) > solver.ceiling {
			batches = append(batches, accumulator)
			accumulator = leaf
			continue
		}
		merged, ok := solver.merge(accumulator, leaf)
		if !ok {
			instance.certificates = nil
			return nil, nil
		}
		accumulator = merged
	}
	batches = append(batches, accumulator)
	solver.logger.WithFields(logrus.Fields{
		"leaves":  len(leaves),
		"batches": len(batches),
	}).Debug("fold complete")

	//** Tournament reduction: merge adjacent pairs until one survivor
	// remains; an odd sub-instance is carried to the next round.
	for round := 1; len(batches) > 1; round++ {
		next := make([]*Instance, 0, (len(batches)+1)/2)
		for i := 0; i+1 < len(batches); i += 2 {
			merged, ok := solver.merge(batches[i], batches[i+1])
			if !ok {
				instance.certificates = nil
				return nil, nil
			}
			next = append(next, merged)
		}
		if len(batches)%2 == 1 {
			next = append(next, batches[len(batches)-1])
		}
		batches = next
		solver.logger.WithFields(logrus.Fields{
			"round":     round,
			"remaining": len(batches),
		}).Debug("tournament round complete")
	}

	instance.certificates = batches[0].Certificates()
	return instance.Certificates(), nil
}

// merge combines two sub-instances: the certificate cross product filtered
// down to compatible unions, de-duplicated by canonical key, over the
// concatenated clause lists. Returns false when no pair is compatible, which
// makes the combination (and therefore the whole formula) unsatisfiable.
func (solver *mergeSolver) merge(left, right *Instance) (*Instance, bool) {
	seen := mapset.NewSet[string]()
	merged := make([]Certificate, 0, len(left.certificates))
	for _, leftCertificate := range left.certificates {
		for _, rightCertificate := range right.certificates {
			certificate, ok := leftCertificate.Merge(rightCertificate)
			if !ok {
				continue
			}
			if seen.Add(certificate.Key()) {
				merged = append(merged, certificate)
			}
		}
	}
	if len(merged) == 0 {
		return nil, false
	}
	combined := &Instance{
		clauses:        append(left.Clauses(), right.Clauses()...),
		partialClauses: append(left.Clauses(), right.Clauses()...),
		numVars:        left.numVars,
		certificates:   merged,
	}
	return combined, true
}
