package sat

import (
	"strings"
)

// ClauseStatus describes the state of a clause under the solver's current
// partial assignment.
type ClauseStatus uint8

const (
	// Undetermined means the clause has at least two unassigned literals and
	// no true literal yet.
	Undetermined ClauseStatus = iota

	// Satisfied means at least one of the clause's literals is true.
	Satisfied

	// Unsatisfied means all the clause's literals are false. This is the
	// "empty clause" contradiction: the branch that produced it cannot be
	// extended into a model.
	Unsatisfied

	// Unit means exactly one of the clause's literals is unassigned and all
	// the others are false. The unassigned literal is forced to true.
	Unit
)

func (cs ClauseStatus) String() string {
	switch cs {
	case Satisfied:
		return "satisfied"
	case Unsatisfied:
		return "unsatisfied"
	case Unit:
		return "unit"
	default:
		return "undetermined"
	}
}

// Clause is a disjunction of literals. Clauses held by a solver are
// normalized: no duplicate literals, no two complementary literals, and at
// least two literals (smaller clauses are resolved at construction).
type Clause struct {
	literals []Literal
}

// NewClause normalizes tmpLiterals and returns the resulting clause. The
// second return value is false if and only if the clause is a root-level
// contradiction.
//
// Normalization collapses duplicate literals, drops literals that are false
// at the root level, and discards the clause entirely if it is a tautology
// (contains a literal and its complement) or if one of its literals is
// already true. Discarding tautologies is permanently safe: such a clause is
// true under every assignment, so it can neither become the empty clause nor
// force an assignment. Both discard cases return (nil, true).
//
// If a single literal remains, the clause is not created either: the literal
// is directly enqueued as a root-level fact and the second return value
// reports whether the assignment was consistent.
func NewClause(s *Solver, tmpLiterals []Literal) (*Clause, bool) {
	seen := make(map[Literal]struct{}, len(tmpLiterals))
	literals := make([]Literal, 0, len(tmpLiterals))

	for _, l := range tmpLiterals {
		if _, ok := seen[l.Opposite()]; ok {
			return nil, true // tautology, true under every assignment
		}
		if _, ok := seen[l]; ok {
			continue // duplicate
		}
		seen[l] = struct{}{}

		switch s.LitValue(l) {
		case True:
			return nil, true // already satisfied at the root
		case False:
			continue // can never help satisfy the clause
		}
		literals = append(literals, l)
	}

	switch len(literals) {
	case 0:
		// Empty clauses cannot be satisfied.
		return nil, false
	case 1:
		// Directly enqueue unit facts.
		return nil, s.enqueue(literals[0])
	default:
		return &Clause{literals: literals}, true
	}
}

// Status evaluates the clause under the solver's current assignment. If the
// clause is Unit, the second return value is its sole unassigned literal;
// it is -1 otherwise.
func (c *Clause) Status(s *Solver) (ClauseStatus, Literal) {
	unassigned := Literal(-1)
	nUnassigned := 0
	for _, l := range c.literals {
		switch s.LitValue(l) {
		case True:
			return Satisfied, -1
		case Unknown:
			unassigned = l
			nUnassigned++
		}
	}

	switch nUnassigned {
	case 0:
		return Unsatisfied, -1
	case 1:
		return Unit, unassigned
	default:
		return Undetermined, -1
	}
}

// Simplify reduces the clause according to the root-level assignment: false
// literals are removed permanently. It returns true if the clause is
// satisfied at the root level, in which case the caller should detach it.
// Must only be called at decision level 0.
func (c *Clause) Simplify(s *Solver) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.LitValue(lit) {
		case True:
			return true
		case False:
			// discard the literal.
		case Unknown:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
