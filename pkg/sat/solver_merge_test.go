package sat

import (
	"io"
	"math/big"
	"testing"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestMergeSolverSatisfiable(t *testing.T) {
	instance, err := NewInstanceFromLiterals([][]int{{1, 2}, {-1, 2}}, 2)
	assert.NoError(t, err)

	certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
	assert.NoError(t, err)
	assert.NotEmpty(t, certificates)

	// Every satisfying assignment sets variable 2 to true
	assert.True(t, lo.EveryBy(certificates, func(certificate Certificate) bool {
		assignment, getErr := certificate.Get(2)
		assert.NoError(t, getErr)
		return assignment == True
	}))

	// Every certificate satisfies both clauses
	for _, certificate := range certificates {
		for _, clause := range instance.Clauses() {
			assert.Equal(t, Satisfied, clause.Apply(certificate).Status)
		}
	}

	// The covering set is {1 2}, {-1 2} and {2}; summed 2^(free) accounting
	// counts the overlap as well, so the reported total is an upper bound on
	// the 2 real solutions.
	assert.Len(t, certificates, 3)
	assert.Equal(t, big.NewInt(4), instance.CountSolutions())
}

func TestMergeSolverUnsatisfiable(t *testing.T) {
	t.Run("contradictory units", func(t *testing.T) {
		instance, err := NewInstanceFromLiterals([][]int{{1}, {-1}}, 1)
		assert.NoError(t, err)

		certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
		assert.NoError(t, err)
		assert.Empty(t, certificates)
		assert.Equal(t, big.NewInt(0), instance.CountSolutions())
	})

	t.Run("empty clause defeats everything", func(t *testing.T) {
		instance, err := NewInstanceFromLiterals([][]int{{1, 2}, {}}, 2)
		assert.NoError(t, err)

		certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
		assert.NoError(t, err)
		assert.Empty(t, certificates)
	})

	t.Run("conflict found deep in the reduction", func(t *testing.T) {
		instance, err := NewInstanceFromLiterals([][]int{
			{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		}, 2)
		assert.NoError(t, err)

		certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
		assert.NoError(t, err)
		assert.Empty(t, certificates)
	})
}

func TestMergeSolverSingleClause(t *testing.T) {
	instance, err := NewInstanceFromLiterals([][]int{{1, -2, 3}}, 3)
	assert.NoError(t, err)

	certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
	assert.NoError(t, err)

	keys := lo.Map(certificates, func(certificate Certificate, _ int) string {
		return certificate.Key()
	})
	assert.ElementsMatch(t, []string{"1", "-2", "3"}, keys)
}

func TestMergeSolverBatchCeiling(t *testing.T) {
	// A tiny ceiling forces the fold to seal accumulators constantly and
	// leaves the work to the tournament; the verdict must not change.
	instance, err := NewInstanceFromLiterals([][]int{
		{1, 2, 3}, {-1, 2}, {2, -3}, {-2, 3},
	}, 3)
	assert.NoError(t, err)

	for _, ceiling := range []int{1, 2, DefaultBatchCeiling} {
		solver := NewMergeSolver(WithBatchCeiling(ceiling), WithLogger(quietLogger()))
		certificates, err := solver.Solve(instance)
		assert.NoError(t, err)
		assert.NotEmpty(t, certificates)
		for _, certificate := range certificates {
			for _, clause := range instance.Clauses() {
				assert.Equal(t, Satisfied, clause.Apply(certificate).Status)
			}
		}
	}
}

func TestMergeSolverDeduplicatesCertificates(t *testing.T) {
	// Both clauses contribute the {1} branch; the merged set must carry a
	// single copy of it.
	instance, err := NewInstanceFromLiterals([][]int{{1, 2}, {1, 3}}, 3)
	assert.NoError(t, err)

	certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
	assert.NoError(t, err)

	keys := lo.Map(certificates, func(certificate Certificate, _ int) string {
		return certificate.Key()
	})
	assert.Equal(t, len(keys), len(lo.Uniq(keys)))
	assert.Contains(t, keys, "1")
}

func TestMergeSolverStoresCertificatesOnInstance(t *testing.T) {
	instance, err := NewInstanceFromLiterals([][]int{{1}}, 1)
	assert.NoError(t, err)
	assert.Empty(t, instance.Certificates())

	certificates, err := NewMergeSolver(WithLogger(quietLogger())).Solve(instance)
	assert.NoError(t, err)
	assert.Len(t, certificates, 1)
	assert.Len(t, instance.Certificates(), 1)
	assert.Equal(t, big.NewInt(1), instance.CountSolutions())
}
