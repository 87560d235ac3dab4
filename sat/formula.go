package sat

import (
	"errors"
	"fmt"
)

// ErrMalformedFormula reports a clause that references a variable outside
// the range declared with AddVariable. It is detected when the clause is
// added, before any search starts.
var ErrMalformedFormula = errors.New("malformed formula")

// AddVariable adds a new variable to the formula and returns its ID.
func (s *Solver) AddVariable() int {
	index := s.NumVariables()

	// One entry for each literal.
	s.assigns = append(s.assigns, Unknown)
	s.assigns = append(s.assigns, Unknown)
	s.occurs = append(s.occurs, nil)
	s.occurs = append(s.occurs, nil)

	s.seenPos.Expand()
	s.seenNeg.Expand()
	return index
}

// AddClause adds a clause over previously added variables to the formula.
// Clauses can only be added at the root level, i.e. before Solve is called
// or after it has returned.
func (s *Solver) AddClause(clause []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("can only add clauses at the root level")
	}
	for _, l := range clause {
		if l < 0 || l.VarID() >= s.NumVariables() {
			return fmt.Errorf("%w: literal %d of clause %v is not in [1, %d]",
				ErrMalformedFormula, toDIMACS(l), clause, s.NumVariables())
		}
	}

	c, ok := NewClause(s, clause)
	if c != nil {
		s.constraints = append(s.constraints, c)
		s.attach(c)
	}
	if !ok {
		s.unsat = true
	}
	return nil
}

// toDIMACS returns the 1-based signed integer representation of l.
func toDIMACS(l Literal) int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}

// attach registers c in the occurrence list of each of its literals.
func (s *Solver) attach(c *Clause) {
	for _, l := range c.literals {
		s.occurs[l] = append(s.occurs[l], c)
	}
}

// detach removes c from the occurrence list of each of its literals.
func (s *Solver) detach(c *Clause) {
	for _, l := range c.literals {
		j := 0
		for _, w := range s.occurs[l] {
			if w != c {
				s.occurs[l][j] = w
				j++
			}
		}
		s.occurs[l] = s.occurs[l][:j]
	}
}

func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

// VarValue returns the value currently assigned to variable x.
func (s *Solver) VarValue(x int) LBool {
	return s.assigns[PositiveLiteral(x)]
}

// LitValue returns the value of literal l under the current assignment.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// enqueue records the fact that l is true, pushing it on the trail and on
// the propagation queue. It returns false if l is already false under the
// current assignment, i.e. if the fact is conflicting.
func (s *Solver) enqueue(l Literal) bool {
	switch s.LitValue(l) {
	case False:
		return false // conflicting assignment
	case True:
		return true // already assigned
	default:
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// undoOne unassigns the last assigned variable.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.trail = s.trail[:len(s.trail)-1]
	if s.order != nil {
		s.order.Undo(l.VarID())
	}
}

// assume opens a new decision level and enqueues l as its decision.
func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.flipped = append(s.flipped, false)
	return s.enqueue(l)
}

// cancel undoes all the assignments of the current decision level and closes
// the level.
func (s *Solver) cancel() {
	c := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; c != 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
	s.flipped = s.flipped[:len(s.flipped)-1]
}

// cancelUntil undoes all the assignments above the given decision level.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

// saveModel appends the current assignment to Models. Variables left
// unassigned are unconstrained and default to false.
func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for i := range model {
		model[i] = s.VarValue(i) == True
	}
	s.Models = append(s.Models, model)
}

// Model returns the most recent model found by Solve, or nil if none was
// found yet.
func (s *Solver) Model() []bool {
	if len(s.Models) == 0 {
		return nil
	}
	return s.Models[len(s.Models)-1]
}
