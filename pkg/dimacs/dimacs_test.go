package dimacs

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/nishaq503/MergeSAT/pkg/sat"
)

const sample = `c a comment
c another comment
p cnf 4 3
1 -2 3 0
2 4 0
-1 0
`

func TestParse(t *testing.T) {
	instance, err := Parse(strings.NewReader(sample))
	assert.NoError(t, err)

	k, m, n := instance.Size()
	assert.Equal(t, 3, k)
	assert.Equal(t, 4, m)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, instance.NumVars())

	clauses := instance.Clauses()
	assert.Equal(t, []int{1, -2, 3}, clauses[0].Literals())
	assert.Equal(t, []int{2, 4}, clauses[1].Literals())
	assert.Equal(t, []int{-1}, clauses[2].Literals())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing header", "1 2 0\n"},
		{"duplicate header", "p cnf 2 1\np cnf 2 1\n1 2 0\n"},
		{"malformed header", "p cnf two 1\n1 2 0\n"},
		{"short header", "p cnf 2\n1 2 0\n"},
		{"non-positive variable count", "p cnf 0 1\n1 0\n"},
		{"missing trailing zero", "p cnf 2 1\n1 2\n"},
		{"interior zero", "p cnf 2 1\n1 0 2 0\n"},
		{"literal not an int", "p cnf 2 1\n1 x 0\n"},
		{"clause count mismatch", "p cnf 2 2\n1 2 0\n"},
		{"variable above declared count", "p cnf 2 1\n1 -3 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.input))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original, err := Parse(strings.NewReader(sample))
	assert.NoError(t, err)

	var buffer bytes.Buffer
	assert.NoError(t, Write(&buffer, original))

	reread, err := Parse(&buffer)
	assert.NoError(t, err)

	originalK, originalM, originalN := original.Size()
	rereadK, rereadM, rereadN := reread.Size()
	assert.Equal(t, originalK, rereadK)
	assert.Equal(t, originalM, rereadM)
	assert.Equal(t, originalN, rereadN)

	canonical := func(instance *sat.Instance) []string {
		keys := lo.Map(instance.Clauses(), func(clause sat.Clause, _ int) string {
			return clause.String()
		})
		slices.Sort(keys)
		return keys
	}
	assert.Equal(t, canonical(original), canonical(reread))
}

func TestWriteSolution(t *testing.T) {
	t.Run("satisfiable report", func(t *testing.T) {
		first := sat.NewCertificate()
		assert.NoError(t, first.Insert(2))
		second := sat.NewCertificate()
		assert.NoError(t, second.Insert(1))
		assert.NoError(t, second.Insert(-3))

		var buffer bytes.Buffer
		assert.NoError(t, WriteSolution(&buffer, 3, []sat.Certificate{first, second}))

		// 2^(3-1) + 2^(3-2)
		expected := "found 6 solutions, 2 certificates\n" +
			"1: Any 2: True 3: Any\n" +
			"1: True 2: Any 3: False\n"
		assert.Equal(t, expected, buffer.String())
	})

	t.Run("unsatisfiable report", func(t *testing.T) {
		var buffer bytes.Buffer
		assert.NoError(t, WriteSolution(&buffer, 2, nil))
		assert.Equal(t, "found 0 solutions, 0 certificates\n", buffer.String())
	})
}
