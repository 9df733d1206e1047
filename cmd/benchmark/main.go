package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/nishaq503/MergeSAT/pkg/gen"
	"github.com/nishaq503/MergeSAT/pkg/sat"
)

type benchmarkCase struct {
	k, m, n int
}

type benchmarkResult struct {
	benchmarkCase
	satisfiable  bool
	certificates int
	count        string
	duration     time.Duration
}

var cases = []benchmarkCase{
	{3, 5, 3},
	{3, 8, 6},
	{4, 10, 8},
	{4, 12, 12},
	{5, 15, 16},
	{5, 18, 24},
}

func main() {
	seedPtr := flag.Int64("seed", 42, "Seed for instance generation")
	ceilingPtr := flag.Int("ceiling", sat.DefaultBatchCeiling, "Certificate-count ceiling for the merge solver")
	outPathPtr := flag.String("out", "", "Path of the CSV results file; if empty, results are written to the standard output")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seedPtr))
	mergeSolver := sat.NewMergeSolver(sat.WithBatchCeiling(*ceilingPtr))
	giniSolver := sat.NewGiniSolver()

	results := lo.Map(cases, func(c benchmarkCase, _ int) benchmarkResult {
		instance, err := gen.Instance(rng, c.k, c.m, c.n)
		if err != nil {
			log.Fatalf("cannot generate instance %+v: %v", c, err)
		}

		start := time.Now()
		certificates, err := mergeSolver.Solve(instance)
		duration := time.Since(start)
		if err != nil {
			log.Fatalf("merge solver failed on %+v: %v", c, err)
		}

		// Cross-check the verdict against gini
		reference, err := giniSolver.Solve(instance)
		if err != nil {
			log.Fatalf("gini solver failed on %+v: %v", c, err)
		}
		if (len(certificates) > 0) != (len(reference) > 0) {
			log.Fatalf("verdict mismatch on %+v: merge=%v gini=%v", c, len(certificates) > 0, len(reference) > 0)
		}

		// Every certificate must satisfy every clause
		for _, certificate := range certificates {
			if !satisfies(instance, certificate) {
				log.Fatalf("invalid certificate %v for instance %+v", certificate, c)
			}
		}

		return benchmarkResult{
			benchmarkCase: c,
			satisfiable:   len(certificates) > 0,
			certificates:  len(certificates),
			count:         instance.CountSolutions().String(),
			duration:      duration,
		}
	})

	out := os.Stdout
	if *outPathPtr != "" {
		file, err := os.Create(*outPathPtr)
		if err != nil {
			log.Fatalf("cannot create results file: %v", err)
		}
		defer file.Close()
		out = file
	}
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"k", "m", "n", "satisfiable", "certificates", "solutions", "duration"}); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
	for _, result := range results {
		record := []string{
			strconv.Itoa(result.k),
			strconv.Itoa(result.m),
			strconv.Itoa(result.n),
			fmt.Sprintf("%v", result.satisfiable),
			strconv.Itoa(result.certificates),
			result.count,
			result.duration.String(),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("cannot write results: %v", err)
		}
	}
}

// satisfies reports whether the certificate satisfies every clause of the
// instance: each clause must contain at least one literal resolving to True.
func satisfies(instance *sat.Instance, certificate sat.Certificate) bool {
	return lo.EveryBy(instance.Clauses(), func(clause sat.Clause) bool {
		return clause.Apply(certificate).Status == sat.Satisfied
	})
}
