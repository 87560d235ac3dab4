package sat

import (
	"math/rand/v2"
	"testing"
)

// lits converts DIMACS-style signed 1-based integers to literals.
func lits(ls ...int) []Literal {
	out := make([]Literal, len(ls))
	for i, l := range ls {
		if l < 0 {
			out[i] = NegativeLiteral(-l - 1)
		} else {
			out[i] = PositiveLiteral(l - 1)
		}
	}
	return out
}

func newTestSolver(t *testing.T, nVars int, clauses [][]int) *Solver {
	t.Helper()
	s := NewDefaultSolver()
	for i := 0; i < nVars; i++ {
		s.AddVariable()
	}
	for _, c := range clauses {
		if err := s.AddClause(lits(c...)); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}
	return s
}

// satisfies returns true if the model satisfies every clause.
func satisfies(clauses [][]int, model []bool) bool {
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			value := model[v-1]
			if l < 0 {
				value = !value
			}
			if value {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// bruteForceSatisfiable enumerates all 2^nVars assignments. Only usable on
// small instances; it is the reference oracle for completeness tests.
func bruteForceSatisfiable(nVars int, clauses [][]int) bool {
	model := make([]bool, nVars)
	for mask := 0; mask < 1<<nVars; mask++ {
		for i := range model {
			model[i] = mask&(1<<i) != 0
		}
		if satisfies(clauses, model) {
			return true
		}
	}
	return false
}

// randomInstance generates a random clause set with clauses of one to three
// literals over variables 1..nVars.
func randomInstance(rng *rand.Rand, nVars int, nClauses int) [][]int {
	clauses := make([][]int, nClauses)
	for i := range clauses {
		size := 1 + rng.IntN(3)
		clause := make([]int, 0, size)
		for len(clause) < size {
			v := 1 + rng.IntN(nVars)
			if rng.IntN(2) == 0 {
				v = -v
			}
			clause = append(clause, v)
		}
		clauses[i] = clause
	}
	return clauses
}
