// Package sat decides satisfiability of CNF formulas and enumerates their
// solutions.
//
// A formula is an Instance: a conjunction of Clauses over signed integer
// literals. Solutions are reported as Certificates, partial assignments that
// leave unconstrained variables free; the certificate list returned by a
// Solver covers every satisfying assignment of the instance.
//
// The merge solver builds one certificate set per clause and conjoins them
// pairwise: the cross product of two sets, filtered to compatible pairs and
// merged, is exactly the solution set of the combined clauses. A sequential
// fold bounds the size of intermediate sets, and a tournament reduction
// combines the rest. An empty intermediate set proves unsatisfiability and
// short-circuits the whole solve.
package sat
