// Package gen builds random CNF instances for testing and benchmarking. All
// randomness comes from an explicitly passed source, so callers control
// determinism.
package gen

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"

	"github.com/nishaq503/MergeSAT/pkg/sat"
)

// MinClauseWidth is the smallest width a generated clause may have.
const MinClauseWidth = 3

// Instance generates a random instance with n distinct clauses over m
// variables, each clause of a random width in [MinClauseWidth, k] with
// distinct variables and random polarities. Clauses are de-duplicated as
// order-independent literal sets. Fails when the parameters make n distinct
// clauses unreachable in a bounded number of draws.
func Instance(rng *rand.Rand, k, m, n int) (*sat.Instance, error) {
	if k < MinClauseWidth {
		return nil, fmt.Errorf("max clause width must be at least %d, got %d", MinClauseWidth, k)
	}
	if m < k {
		return nil, fmt.Errorf("variable count %d is smaller than max clause width %d", m, k)
	}
	if n <= 0 {
		return nil, fmt.Errorf("clause count must be positive, got %d", n)
	}

	seen := mapset.NewSet[string]()
	clauses := make([][]int, 0, n)
	// Duplicates are redrawn; give up once the budget is spent so impossible
	// requests fail instead of spinning.
	attempts := 0
	maxAttempts := 100 * n
	for len(clauses) < n {
		if attempts++; attempts > maxAttempts {
			return nil, fmt.Errorf("could not generate %d distinct clauses with k=%d m=%d", n, k, m)
		}
		literals := randomClause(rng, k, m)
		if seen.Add(clauseKey(literals)) {
			clauses = append(clauses, literals)
		}
	}
	return sat.NewInstanceFromLiterals(clauses, m)
}

func randomClause(rng *rand.Rand, k, m int) []int {
	width := MinClauseWidth + rng.Intn(k-MinClauseWidth+1)
	variables := rng.Perm(m)[:width]
	return lo.Map(variables, func(variable int, _ int) int {
		literal := variable + 1
		if rng.Intn(2) == 0 {
			literal = -literal
		}
		return literal
	})
}

// clauseKey is an order-independent rendering of a literal set.
func clauseKey(literals []int) string {
	sorted := make([]int, len(literals))
	copy(sorted, literals)
	slices.Sort(sorted)
	rendered := lo.Map(sorted, func(literal int, _ int) string {
		return strconv.Itoa(literal)
	})
	return strings.Join(rendered, " ")
}
