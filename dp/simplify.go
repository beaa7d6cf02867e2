package dp

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// solver owns the mutable state of one solve: the formula, the universe
// of literals that have occurred in it, and the literals forced false
// by unit propagation. Nothing here outlives a single Solve call.
type solver struct {
	f *Formula

	// universe holds every literal that has ever occurred in the
	// formula, minus the literals of eliminated atoms. An atom resolved
	// away must never be reconsidered.
	universe map[Literal]struct{}

	// falseLits holds literals forced false by propagation: once a
	// literal is recorded here, every later occurrence of it in any
	// clause is struck out.
	falseLits map[Literal]struct{}
}

func newSolver(problem [][]int) *solver {
	s := &solver{
		f:         NewFormula(),
		universe:  make(map[Literal]struct{}),
		falseLits: make(map[Literal]struct{}),
	}
	for _, lits := range problem {
		c := make(Clause, len(lits))
		for _, v := range lits {
			if v == 0 {
				panic("zero literal passed to Solve")
			}
			c[Literal(v)] = struct{}{}
			s.universe[Literal(v)] = struct{}{}
		}
		s.f.Add(c)
	}
	return s
}

func (s *solver) isFalse(l Literal) bool {
	_, ok := s.falseLits[l]
	return ok
}

// universeLiterals returns the universe in ascending order.
func (s *solver) universeLiterals() []Literal {
	lits := make([]Literal, 0, len(s.universe))
	for l := range s.universe {
		lits = append(lits, l)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	return lits
}

// removeTautologies deletes every clause that contains both a literal
// and its negation. It is idempotent and touches no other state.
func (s *solver) removeTautologies() {
	for _, c := range s.f.Clauses() {
		if c.Tautological() {
			logrus.Debugf("removing tautological clause %s", c)
			s.f.Remove(c)
		}
	}
}

// propagate drives unit propagation to a fixpoint. Each unit clause
// forces its literal true, so the literal's complement is recorded in
// falseLits and struck from every clause; a clause emptied by striking
// is a contradiction, and a clause shrunk to a unit feeds the next
// round. propagate reports whether a conflict was derived, in which
// case the formula is unsatisfiable.
func (s *solver) propagate() (conflict bool) {
	for {
		changed := false
		for _, c := range s.f.Clauses() {
			if !c.Unit() {
				continue
			}
			lit := c.Lit()
			if s.isFalse(lit) {
				logrus.Debugf("conflict: unit clause %s was already forced false", c)
				return true
			}
			s.falseLits[lit.Negate()] = struct{}{}
			s.f.Remove(c)
			changed = true
		}
		for _, c := range s.f.Clauses() {
			var struck []Literal
			for l := range c {
				if s.isFalse(l) {
					struck = append(struck, l)
				}
			}
			if len(struck) == 0 {
				continue
			}
			// The clause's identity changes with its literals, so it
			// must be re-keyed around the mutation.
			s.f.Remove(c)
			for _, l := range struck {
				delete(c, l)
			}
			if c.Empty() {
				logrus.Debugf("conflict: clause emptied by false literals %v", struck)
				return true
			}
			s.f.Add(c)
			changed = true
		}
		if !changed {
			return false
		}
	}
}

// removePureClauses deletes every clause containing a pure literal: one
// whose negation occurs nowhere in the current formula. Such clauses
// are satisfied outright by fixing the pure literal and cannot
// contribute to a refutation. Purity is checked against the live
// formula for each candidate, so a literal made pure by an earlier
// removal in the same pass is still caught.
func (s *solver) removePureClauses() {
	for _, l := range s.universeLiterals() {
		if !s.pure(l) {
			continue
		}
		for _, c := range s.f.Clauses() {
			if c.Has(l) {
				s.f.Remove(c)
			}
		}
		logrus.Debugf("removed clauses containing pure literal %d", l)
	}
}

// pure reports whether l occurs in the formula while its negation does
// not.
func (s *solver) pure(l Literal) bool {
	neg := l.Negate()
	occurs := false
	for _, c := range s.f.Clauses() {
		if c.Has(neg) {
			return false
		}
		if c.Has(l) {
			occurs = true
		}
	}
	return occurs
}
