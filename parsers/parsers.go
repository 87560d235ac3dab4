package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/dpll/sat"
	"github.com/samber/lo"
)

// SATSolver is the part of the solver's interface needed to load a formula.
type SATSolver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file and loads its CNF formula in the
// given SAT solver. Malformed clauses (literal 0 inside a clause, or a
// variable outside the declared range) are rejected with an error before
// any search starts.
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &builder{solver: solver}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		if b.err != nil {
			return b.err // keep the solver's error unwrapped
		}
		return err
	}
	return nil
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver

	// First error reported by the solver, kept so that LoadDIMACS can
	// return it as is.
	err error
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		switch {
		case l == 0:
			return fmt.Errorf("clause %v contains literal 0", tmpClause)
		case l < 0:
			clause[i] = sat.NegativeLiteral(-l - 1)
		default:
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	if err := b.solver.AddClause(clause); err != nil {
		b.err = err
		return err
	}
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given file.
// Model files contain one model per line, written as the sequence of the
// instance's literals under that model.
func ReadModels(filename string) ([][]bool, error) {
	reader, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}

	return b.models, nil
}

// modelBuilder accumulates the literal lines of a model file.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := lo.Map(tmpClause, func(l int, _ int) bool { return l > 0 })
	b.models = append(b.models, model)
	return nil
}
