package sat

// propagate applies unit propagation until it reaches a fixed point. Each
// literal enqueued on the propagation queue is dequeued in turn and the
// clauses containing its opposite are re-evaluated: unit clauses force their
// last unassigned literal (which lands on the queue itself), satisfied and
// undetermined clauses are left alone.
//
// If a clause becomes unsatisfied, propagation halts and returns that clause
// as the conflict. This is a normal, recoverable signal used to drive
// backtracking, not an error. A nil return value means the current partial
// assignment falsifies no clause.
func (s *Solver) propagate() *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()
		s.TotalPropagations++

		// Only the clauses containing !l can lose a literal when l becomes
		// true. Clauses containing l just became satisfied.
		for _, c := range s.occurs[l.Opposite()] {
			status, unit := c.Status(s)
			switch status {
			case Unsatisfied:
				s.propQueue.Clear()
				return c
			case Unit:
				s.enqueue(unit)
			}
		}
	}
	return nil
}

// Simplify simplifies the clause database according to the root-level
// assignment: clauses satisfied at the root are detached permanently and
// literals false at the root are removed from the remaining clauses. It
// returns false if the formula is unsatisfiable at the root level.
//
// Simplify must be called at decision level 0 with an empty propagation
// queue. It is idempotent: a second call on an unchanged root assignment
// removes nothing.
func (s *Solver) Simplify() bool {
	if s.unsat {
		return false
	}

	clauses := s.constraints
	j := 0
	for _, c := range clauses {
		if c.Simplify(s) {
			s.detach(c)
		} else {
			clauses[j] = c
			j++
		}
	}
	s.constraints = clauses[:j]

	return true
}
