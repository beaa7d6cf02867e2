package dp

import (
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// Solve reports whether a boolean formula is satisfiable.
//
// The input is in CNF form where each slice in problem is a clause.
// Each literal is a nonzero integer whose magnitude names a variable
// and whose sign gives the polarity; Solve panics if a zero literal is
// present. Duplicate literals within a clause and duplicate clauses
// within the problem are merged silently.
//
// Unlike a backtracking solver, Solve eliminates variables by
// resolution and destroys the formula as it goes, so no satisfying
// assignment is available for the positive answer.
func Solve(problem [][]int) bool {
	return newSolver(problem).solve()
}

// solve runs the outer Davis-Putnam loop: simplify to a fixpoint, then
// eliminate one batch of variables by resolution, until the formula is
// decided. Each full iteration either derives a terminal answer or
// permanently shrinks the literal universe, so the loop terminates on
// any finite input.
func (s *solver) solve() bool {
	logrus.Debugf("solving: %d literals, %d clauses", len(s.universe), s.f.Len())
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("initial formula: %# v", pretty.Formatter(s.f.Clauses()))
	}
	for {
		s.removeTautologies()
		logrus.Debugf("after tautology removal: %d clauses", s.f.Len())
		if s.propagate() {
			return false
		}
		logrus.Debugf("after unit propagation: %d clauses", s.f.Len())
		s.removePureClauses()
		logrus.Debugf("after pure literal elimination: %d clauses", s.f.Len())

		if s.f.Empty() {
			return true
		}
		if s.f.Has(NewClause()) {
			// An empty clause straight from the input; derived ones are
			// caught as they appear.
			return false
		}

		progress := false
		restart := false
		for _, atom := range s.eliminationOrder() {
			switch s.eliminate(atom) {
			case unsat:
				return false
			case propagated:
				restart = true
			case eliminated:
				progress = true
				logrus.Debugf("eliminated atom %d: %d literals, %d clauses remain",
					atom, len(s.universe), s.f.Len())
			case skipped:
			}
			if restart {
				break
			}
		}
		if restart {
			continue
		}
		if !progress {
			// No atom occurs in both polarities, so every remaining
			// clause is satisfiable independently.
			return true
		}
	}
}
