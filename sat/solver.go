package sat

import (
	"fmt"
	"time"
)

// Solver decides the satisfiability of a formula in conjunctive normal form
// using the DPLL procedure: depth-first search over variable assignments,
// interleaved with unit propagation (including tautology removal) and pure
// literal elimination at every node of the search tree.
type Solver struct {
	// Clause database.
	constraints []*Clause

	// Occurrence lists: for each literal, the clauses that contain it.
	occurs [][]*Clause

	// Branching variable ordering.
	order *VarOrder

	// Propagation queue of newly assigned literals.
	propQueue *Queue[Literal]

	// Value assigned to each literal.
	assigns []LBool

	// Trail.
	trail    []Literal
	trailLim []int

	// For each open decision level, whether the decision has already been
	// flipped to its second value.
	flipped []bool

	// Whether the problem has reached a root-level conflict.
	unsat bool

	// Search statistics.
	TotalDecisions    int64
	TotalPropagations int64
	TotalConflicts    int64
	startTime         time.Time

	// Stop conditions.
	hasStopCond  bool
	maxDecisions int64
	timeout      time.Duration

	// Models found so far, most recent last.
	Models [][]bool

	// Shared by the pure literal pass to track each variable's polarities
	// across the live clauses.
	seenPos *ResetSet
	seenNeg *ResetSet

	verbose bool
}

type Options struct {
	// MaxDecisions stops the search once this many branching decisions have
	// been made, -1 for no limit. A stopped search reports Unknown, which is
	// distinct from unsatisfiable.
	MaxDecisions int64

	// Timeout stops the search after this duration, -1 for no limit.
	Timeout time.Duration

	// Verbose makes Solve print progress statistics as DIMACS comments.
	Verbose bool
}

var DefaultOptions = Options{
	MaxDecisions: -1,
	Timeout:      -1,
	Verbose:      false,
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		propQueue:    NewQueue[Literal](128),
		maxDecisions: -1,
		timeout:      -1,
		seenPos:      &ResetSet{},
		seenNeg:      &ResetSet{},
		verbose:      ops.Verbose,
	}

	if ops.MaxDecisions >= 0 {
		s.hasStopCond = true
		s.maxDecisions = ops.MaxDecisions
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxDecisions >= 0 && s.maxDecisions <= s.TotalDecisions {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}

	return false
}

// Solve searches for an assignment satisfying all the clauses added to the
// solver. It returns True if a model was found (see Model), False if the
// formula is unsatisfiable, and Unknown if a stop condition interrupted the
// search. The solver is returned to the root level in all cases, so clauses
// can be added and Solve called again.
func (s *Solver) Solve() LBool {
	s.order = NewVarOrder(s, s.NumVariables())
	s.startTime = time.Now()

	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()

	status := s.search()

	s.printSearchStats()
	s.printSeparator()

	s.cancelUntil(0)
	return status
}

// search runs the DPLL loop over an explicit stack of decision levels. Each
// iteration propagates to a fixed point, eliminates pure literals, and then
// either reports the verdict, backtracks on conflict, or branches on a new
// variable (trying true first).
func (s *Solver) search() LBool {
	if s.unsat {
		return False
	}

	for {
		if conflict := s.propagate(); conflict != nil {
			s.TotalConflicts++
			if !s.backtrack() {
				s.unsat = true
				return False
			}
			continue
		}

		if s.decisionLevel() == 0 {
			s.Simplify()
		}

		s.eliminatePureLiterals()
		if s.propQueue.Size() > 0 {
			continue // let the pure assignments settle
		}

		if s.allSatisfied() {
			s.saveModel()
			return True
		}

		if s.shouldStop() {
			return Unknown
		}

		s.TotalDecisions++
		if s.TotalDecisions%10000 == 0 {
			s.printSearchStats()
		}
		v := s.order.Select()
		s.assume(PositiveLiteral(v))
	}
}

// backtrack resolves a conflict by undoing the trail down to the most recent
// decision whose second value has not been tried yet, and flipping that
// decision. Levels that have already been flipped are abandoned on the way.
// It returns false if no decision is left to flip, i.e. the search space is
// exhausted and the formula is unsatisfiable.
func (s *Solver) backtrack() bool {
	for s.decisionLevel() > 0 {
		lvl := s.decisionLevel() - 1
		if s.flipped[lvl] {
			s.cancel()
			continue
		}

		decision := s.trail[s.trailLim[lvl]]
		for len(s.trail) > s.trailLim[lvl] {
			s.undoOne()
		}
		s.flipped[lvl] = true
		s.enqueue(decision.Opposite())
		return true
	}
	return false
}

// allSatisfied returns true if every clause is satisfied by the current
// (possibly partial) assignment.
func (s *Solver) allSatisfied() bool {
	for _, c := range s.constraints {
		if status, _ := c.Status(s); status != Satisfied {
			return false
		}
	}
	return true
}

func (s *Solver) printSeparator() {
	if !s.verbose {
		return
	}
	fmt.Println("c ---------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	if !s.verbose {
		return
	}
	fmt.Println("c            time      decisions   propagations      conflicts")
}

func (s *Solver) printSearchStats() {
	if !s.verbose {
		return
	}
	fmt.Printf(
		"c %14.3fs %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalDecisions,
		s.TotalPropagations,
		s.TotalConflicts)
}
