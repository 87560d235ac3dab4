package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// VarOrder selects the solver's next branching variable. Variables are kept
// in a heap ordered by the number of clauses in which they occur, most
// frequent first. The score is computed once when the order is built, which
// keeps selection deterministic: correctness does not depend on the policy,
// only performance does.
type VarOrder struct {
	solver *Solver
	heap   *yagh.IntMap[float64]
}

func NewVarOrder(s *Solver, nVars int) *VarOrder {
	vo := &VarOrder{
		solver: s,
		heap:   yagh.New[float64](nVars),
	}
	for v := 0; v < nVars; v++ {
		vo.Undo(v)
	}
	return vo
}

// Undo puts the variable back in the heap. It is called when backtracking
// unassigns the variable.
func (vo *VarOrder) Undo(varID int) {
	nOccurs := len(vo.solver.occurs[PositiveLiteral(varID)]) +
		len(vo.solver.occurs[NegativeLiteral(varID)])
	vo.heap.Put(varID, -float64(nOccurs))
}

// Select returns the next unassigned variable to branch on.
func (vo *VarOrder) Select() int {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			log.Fatalln("no unassigned variable left")
		}
		if vo.solver.VarValue(next.Elem) == Unknown {
			return next.Elem
		}
	}
}
