package sat

// eliminatePureLiterals assigns every pure variable, i.e. every variable
// whose literals all have the same polarity across the live (non-satisfied)
// clauses. Assigning a pure variable the value matching its polarity can
// never falsify a clause: no live clause contains the opposite polarity. It
// can only satisfy clauses, which in turn can make other variables pure, so
// the pass repeats until it reaches a fixed point.
//
// Pure assignments are recorded on the trail like propagated facts, so they
// are undone by backtracking along with the decision that exposed them.
func (s *Solver) eliminatePureLiterals() {
	for {
		s.seenPos.Clear()
		s.seenNeg.Clear()

		for _, c := range s.constraints {
			if status, _ := c.Status(s); status == Satisfied {
				continue
			}
			for _, l := range c.literals {
				if s.LitValue(l) != Unknown {
					continue
				}
				if l.IsPositive() {
					s.seenPos.Add(l.VarID())
				} else {
					s.seenNeg.Add(l.VarID())
				}
			}
		}

		assigned := 0
		for v := 0; v < s.NumVariables(); v++ {
			if s.VarValue(v) != Unknown {
				continue
			}
			pos := s.seenPos.Contains(v)
			neg := s.seenNeg.Contains(v)
			switch {
			case pos && !neg:
				s.enqueue(PositiveLiteral(v))
				assigned++
			case neg && !pos:
				s.enqueue(NegativeLiteral(v))
				assigned++
			}
		}

		if assigned == 0 {
			return
		}
	}
}
