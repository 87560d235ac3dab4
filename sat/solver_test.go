package sat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_contradictingUnits(t *testing.T) {
	s := newTestSolver(t, 1, [][]int{
		{1},
		{-1},
	})

	assert.Equal(t, False, s.Solve())
	assert.Nil(t, s.Model())
}

func TestSolve_propagationReachesContradiction(t *testing.T) {
	// Propagating !2 forces 1 from the first clause and !1 from the second.
	s := newTestSolver(t, 2, [][]int{
		{1, 2},
		{-1, 2},
		{-2},
	})

	assert.Equal(t, False, s.Solve())
}

func TestSolve_propagationChain(t *testing.T) {
	s := newTestSolver(t, 4, [][]int{
		{1},
		{-1, 2},
		{-2, 3},
		{-3, 4},
	})

	require.Equal(t, True, s.Solve())
	assert.Equal(t, []bool{true, true, true, true}, s.Model())
}

func TestSolve_tautologicalClauseOnly(t *testing.T) {
	s := newTestSolver(t, 2, [][]int{
		{1, -1, 2},
	})

	require.Equal(t, True, s.Solve())
	assert.Len(t, s.Model(), 2)
}

func TestSolve_allCombinationsForbidden(t *testing.T) {
	s := newTestSolver(t, 2, [][]int{
		{1, 2},
		{1, -2},
		{-1, 2},
		{-1, -2},
	})

	assert.Equal(t, False, s.Solve())
}

func TestSolve_emptyFormula(t *testing.T) {
	s := newTestSolver(t, 3, nil)

	require.Equal(t, True, s.Solve())
	assert.Len(t, s.Model(), 3)
}

func TestSolve_zeroVariables(t *testing.T) {
	s := newTestSolver(t, 0, nil)

	require.Equal(t, True, s.Solve())
	assert.Len(t, s.Model(), 0)
}

func TestSolve_pureLiteralsAvoidBranching(t *testing.T) {
	s := newTestSolver(t, 3, [][]int{
		{1, 2},
		{1, 3},
	})

	require.Equal(t, True, s.Solve())
	assert.Equal(t, int64(0), s.TotalDecisions)
	assert.Equal(t, True, s.VarValue(0))
}

func TestSolve_backtracksOverBadFirstDecision(t *testing.T) {
	// Variable 1 appears in every clause so it is decided first, and true
	// is tried first. Only 1=false extends to a model.
	s := newTestSolver(t, 3, [][]int{
		{-1, 2},
		{-1, -2},
		{-1, 3},
		{1, -3, 2},
	})

	require.Equal(t, True, s.Solve())

	model := s.Model()
	assert.False(t, model[0])
	assert.NotZero(t, s.TotalConflicts)
}

func TestSolve_modelSatisfiesOriginalClauses(t *testing.T) {
	clauses := [][]int{
		{1, -1, 2}, // tautology, discarded internally
		{2, 3, -4},
		{-3, 4},
		{-2, -3},
		{1, 4},
	}
	s := newTestSolver(t, 4, clauses)

	require.Equal(t, True, s.Solve())
	assert.True(t, satisfies(clauses, s.Model()))
}

func TestSolve_maxDecisionsReportsUnknown(t *testing.T) {
	s := NewSolver(Options{MaxDecisions: 0, Timeout: -1})
	for i := 0; i < 2; i++ {
		s.AddVariable()
	}
	require.NoError(t, s.AddClause(lits(1, 2)))
	require.NoError(t, s.AddClause(lits(-1, -2)))

	assert.Equal(t, Unknown, s.Solve())
}

func TestAddClause_undeclaredVariable(t *testing.T) {
	s := newTestSolver(t, 2, nil)

	err := s.AddClause(lits(1, 3))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFormula)
}

func TestAddClause_negativeLiteral(t *testing.T) {
	s := newTestSolver(t, 2, nil)

	err := s.AddClause([]Literal{Literal(-1)})

	assert.ErrorIs(t, err, ErrMalformedFormula)
}

// TestSolveAgainstBruteForce verifies both soundness and completeness on
// random instances small enough to be checked by exhaustive enumeration.
func TestSolveAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(97, 31))
	for i := 0; i < 200; i++ {
		nVars := 2 + rng.IntN(10)
		nClauses := 1 + rng.IntN(4*nVars)
		clauses := randomInstance(rng, nVars, nClauses)

		s := newTestSolver(t, nVars, clauses)
		got := s.Solve()
		want := bruteForceSatisfiable(nVars, clauses)

		require.Equal(t, Lift(want), got, "clauses: %v", clauses)
		if got == True {
			require.True(t, satisfies(clauses, s.Model()), "clauses: %v, model: %v", clauses, s.Model())
		}
	}
}

func TestSolve_trailRestoredAfterSolve(t *testing.T) {
	s := newTestSolver(t, 3, [][]int{
		{1, 2},
		{-1, -2},
		{2, 3},
	})

	require.Equal(t, True, s.Solve())

	// Only root-level facts may survive a completed search.
	assert.Equal(t, 0, s.decisionLevel())
}
