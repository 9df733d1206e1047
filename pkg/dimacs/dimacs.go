// Package dimacs reads and writes SAT instances in the DIMACS CNF text
// format, and renders solution reports.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/nishaq503/MergeSAT/pkg/sat"
)

// ErrFormat is wrapped by every parse error, so callers can tell a malformed
// file apart from solving errors.
var ErrFormat = errors.New("invalid DIMACS CNF")

// Parse reads a DIMACS CNF instance. Lines starting with 'c' are comments;
// the single 'p cnf <vars> <clauses>' header declares counts checked against
// the observed clauses; every other non-empty line is a clause: nonzero
// signed integers terminated by a trailing 0.
func Parse(r io.Reader) (*sat.Instance, error) {
	var (
		headerSeen      bool
		declaredVars    int
		declaredClauses int
		clauses         [][]int
		observedMaxVar  int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return nil, fmt.Errorf("%w: duplicate header at line %d", ErrFormat, lineNo)
			}
			var err error
			declaredVars, declaredClauses, err = parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
			}
			headerSeen = true
			continue
		}

		literals, err := parseClauseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		for _, literal := range literals {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable > observedMaxVar {
				observedMaxVar = variable
			}
		}
		clauses = append(clauses, literals)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if !headerSeen {
		return nil, fmt.Errorf("%w: missing problem header", ErrFormat)
	}
	if declaredClauses != len(clauses) {
		return nil, fmt.Errorf("%w: header declares %d clauses, found %d",
			ErrFormat, declaredClauses, len(clauses))
	}
	if observedMaxVar > declaredVars {
		return nil, fmt.Errorf("%w: header declares %d variables, clause references %d",
			ErrFormat, declaredVars, observedMaxVar)
	}

	return sat.NewInstanceFromLiterals(clauses, declaredVars)
}

func parseHeader(line string) (numVars, numClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("malformed header %q", line)
	}
	numVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("variable count %q is not an int", fields[2])
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("clause count %q is not an int", fields[3])
	}
	if numVars <= 0 {
		return 0, 0, fmt.Errorf("variable count must be positive, got %d", numVars)
	}
	if numClauses < 0 {
		return 0, 0, fmt.Errorf("clause count must not be negative, got %d", numClauses)
	}
	return numVars, numClauses, nil
}

func parseClauseLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("literal %q is not an int", field)
		}
		values = append(values, value)
	}
	if len(values) == 0 || values[len(values)-1] != 0 {
		return nil, fmt.Errorf("clause %q is not terminated by 0", line)
	}
	literals := values[:len(values)-1]
	if lo.SomeBy(literals, func(literal int) bool { return literal == 0 }) {
		return nil, fmt.Errorf("clause %q contains an interior 0", line)
	}
	return literals, nil
}

// Write emits the instance in DIMACS CNF format.
func Write(w io.Writer, instance *sat.Instance) error {
	clauses := instance.Clauses()
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", instance.NumVars(), len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, literal := range clause.Literals() {
			if _, err := fmt.Fprintf(w, "%d ", literal); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}

// WriteSolution renders the solution report: a summary line followed by one
// line per certificate showing every variable as True, False, or Any.
func WriteSolution(w io.Writer, numVars int, certificates []sat.Certificate) error {
	count := sat.CountAssignments(certificates, numVars)
	if _, err := fmt.Fprintf(w, "found %s solutions, %d certificates\n", count, len(certificates)); err != nil {
		return err
	}
	for _, certificate := range certificates {
		rendered := make([]string, 0, numVars)
		for variable := 1; variable <= numVars; variable++ {
			assignment, err := certificate.Get(variable)
			if err != nil {
				return err
			}
			state := "Any"
			if assignment != sat.Unassigned {
				state = assignment.String()
			}
			rendered = append(rendered, fmt.Sprintf("%d: %s", variable, state))
		}
		if _, err := fmt.Fprintln(w, strings.Join(rendered, " ")); err != nil {
			return err
		}
	}
	return nil
}
