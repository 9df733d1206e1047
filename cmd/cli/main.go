package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nishaq503/MergeSAT/internal/config"
	"github.com/nishaq503/MergeSAT/pkg/dimacs"
	"github.com/nishaq503/MergeSAT/pkg/sat"
)

var validSolvers = []string{"merge", "gini"}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the DIMACS CNF input file")
	outFilePathPtr := flag.String("out", "", "Path to re-emit the parsed instance as DIMACS CNF; if empty, nothing is re-emitted")
	solverPtr := flag.String("solver", "", `Solver to use. Allowed values are: "merge" (enumerates a covering certificate set) and "gini" (reports a single model), where "merge" is the default`)
	ceilingPtr := flag.Int("ceiling", 0, "Certificate-count ceiling for the merge solver's batching fold")
	verbosePtr := flag.Bool("verbose", false, "Log solver progress")
	configPathPtr := flag.String("config", "", "Path to a JSON config file; flags override its values")
	flag.Parse()

	// Load config and overlay flags
	cfg := config.Default()
	if *configPathPtr != "" {
		var err error
		if cfg, err = config.Load(*configPathPtr); err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
	}
	if *solverPtr != "" {
		cfg.Solver = strings.ToLower(*solverPtr)
	}
	if *ceilingPtr > 0 {
		cfg.BatchCeiling = *ceilingPtr
	}
	if *verbosePtr {
		cfg.Verbose = true
	}

	// Validate arguments
	if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validSolvers, cfg.Solver) {
		log.Fatalf("%v is not a valid solver", cfg.Solver)
	}

	logger := logrus.New()
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Read the instance; a failed read aborts before any solving attempt
	file, err := os.Open(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot open input file: %v", err)
	}
	instance, err := dimacs.Parse(file)
	file.Close()
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	k, m, n := instance.Size()
	logger.WithFields(logrus.Fields{"k": k, "m": m, "n": n}).Debug("instance parsed")

	// Re-emit the instance if requested
	if *outFilePathPtr != "" {
		outFile, err := os.Create(*outFilePathPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer outFile.Close()
		if err := dimacs.Write(outFile, instance); err != nil {
			log.Fatalf("cannot write output file: %v", err)
		}
	}

	// Solve and report; unsatisfiable prints the zero-solution report
	var solver sat.Solver
	switch cfg.Solver {
	case "gini":
		solver = sat.NewGiniSolver()
	default:
		solver = sat.NewMergeSolver(
			sat.WithBatchCeiling(cfg.BatchCeiling),
			sat.WithLogger(logger),
		)
	}
	certificates, err := solver.Solve(instance)
	if err != nil {
		log.Fatalf("an error occurred while solving: %v", err)
	}
	if err := dimacs.WriteSolution(os.Stdout, instance.NumVars(), certificates); err != nil {
		log.Fatalf("cannot write solution report: %v", err)
	}
}
